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


// Package ollama provides AI service implementations backed by a local
// Ollama server, using the langchaingo client library.
//
// Both the generator and the embedder share the server configured in
// ai.Config; the per-call HTTP timeout bounds every model round trip so a
// stuck model fails one item instead of hanging an ingestion cycle.
//
// # Usage
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := ollama.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.Generator().Generate(ctx, systemPrompt, userPrompt)
//	vec, err := provider.Embedder().EmbedText(ctx, "sample text")
package ollama
