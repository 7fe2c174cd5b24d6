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


// Package synthesis turns raw news items into curated bilingual articles
// via a generative model.
//
// The model contract is fragile by nature: models wrap JSON in prose and
// code fences, leave trailing commas, quote values with backticks, and
// occasionally return the "content" field as a nested object instead of a
// markdown string. This package owns all of that recovery:
//
//   - ExtractJSONBlock scans for the outermost balanced JSON object with
//     an explicit string/escape state machine, so braces inside quoted
//     strings never corrupt the bracket count.
//   - Repair heuristics strip fences, re-quote backtick values, and drop
//     trailing commas.
//   - Nested content objects are flattened deterministically into
//     markdown headings; the ambiguity never leaks past this package.
//   - The free-form category string collapses onto the closed label set
//     via a deliberately lossy keyword heuristic.
//
// Transport failures and unrecoverable output both surface as *Error with
// the raw model response attached for diagnosis; callers treat either as
// a per-item failure and keep the cycle going.
package synthesis
