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


// Package ingest orchestrates the news ingestion cycle: fetch raw items
// from the feeds, drop what the archive already has, synthesize the rest
// into curated articles, persist them, and rebuild the search index.
//
// Items are processed strictly one at a time. Every per-item failure,
// whatever its kind, is logged and skipped; nothing an individual item
// does can abort the cycle. The Scheduler repeats cycles on a fixed
// interval; a zero or negative interval disables scheduling entirely.
package ingest
