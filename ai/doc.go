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


// Package ai provides abstractions for the AI services used by the observer.
//
// This package defines interfaces for generative chat completion and text
// embeddings. The pipeline and index depend on these abstractions rather
// than on concrete model clients.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Generator: Produces chat-completion text from system + user prompts
//   - Embedder: Generates vector embeddings from text
//   - Provider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
//   - ai/ollama: Production implementation talking to a local Ollama server
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Production constructors (ollama.NewProvider, ollama.NewGenerator, ...)
// return interface types to enforce abstraction. Mock constructors return
// concrete types so tests can inject behavior and assert call counts.
package ai
