// Package triage classifies support tickets into a closed category set
// and routes each ticket to a category-specific responder.
//
// Classification output is parsed into the Category enum immediately at
// the boundary; everything downstream switches on the enum, so a new
// category is a compile-visible change rather than a scattered string
// comparison. Classifier output that matches no known category falls back
// to CategoryUnknown, which routes to a human escalation instead of a
// generated reply.
package triage
