// Package answer turns retrieved chunks and a question into a grounded
// answer.
//
// The prompt construction is deterministic: the same chunks in the same
// order with the same question always render the same prompt, with every
// chunk included verbatim. Generation goes through the Generator
// collaborator; its failures surface as ExternalServiceError and are
// never retried here.
package answer
