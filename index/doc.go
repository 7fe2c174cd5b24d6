// Copyright 2025 Osservatorio AI
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package index maintains the semantic search index over the article
// archive.
//
// The index is always a full snapshot: Rebuild embeds every article,
// assembles a complete replacement generation, and swaps it in
// atomically. Readers hold an RWMutex read lock around the generation
// pointer, so a Query concurrent with a Rebuild observes either the old
// or the new generation, never a partially built one. When any part of a
// rebuild fails the previous generation stays live and the failure is
// reported as *RebuildError.
//
// Generations are persisted to a BadgerDB collection under a
// per-generation key prefix. The flip of the current-generation pointer
// is a single write; stale prefixes left by a crash are dropped on the
// next successful rebuild. Startup loads the persisted generation so
// queries work before the first rebuild completes.
//
// Embedding runs on an ants worker pool in batches, each batch retried
// with exponential backoff. Vectors are normalized at build and query
// time, so relevance is the plain dot product.
package index
