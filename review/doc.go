// Package review runs a fixed panel of reviewers over a code submission
// and synthesizes their findings into one report.
//
// Reviewers run strictly one after another in the order the board was
// declared, and findings are merged by appending in that same order, so a
// report is reproducible from the board definition alone. The final
// summary is a single synthesis call over the merged findings.
package review
