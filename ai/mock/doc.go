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


// Package mock provides test double implementations of the AI service interfaces.
//
// The mocks allow tests to run without an Ollama server and enable
// controlled, deterministic behavior.
//
// # Usage in Tests
//
//	provider := mock.NewMockProvider()
//	text, err := provider.Generator().Generate(ctx, system, user)
//
//	// Custom behavior injection
//	gen := mock.NewMockGenerator()
//	gen.GenerateFunc = func(ctx context.Context, system, user string) (string, error) {
//	    return `{"title":"T","summary":"S","content":"C","category":"LLM"}`, nil
//	}
//
//	// Check call counts (e.g. asserting the answerer made zero model calls)
//	count := gen.CallCount()
//
// # Default Behavior
//
//   - MockGenerator: Echoes a minimal valid article JSON
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockProvider: Aggregates mock generator and embedder
package mock
