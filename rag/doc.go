// Package rag answers reader questions grounded in the article archive.
//
// Retrieval goes through the vector index, answer generation through the
// chat model with an ordinal-cited context block. When the archive has
// nothing to offer the answerer returns a fixed editorial fallback
// without calling the model at all.
package rag
