// Package loader turns external sources into documents ready for
// ingestion: literal strings, text files, web pages and markdown. Every
// loader yields plain text; binary formats such as PDF are out of scope
// and callers extract text themselves before ingesting.
package loader
