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


// Package feeds pulls candidate news items from syndication feeds.
//
// The Fetcher walks a static source registry, parses each RSS/Atom feed,
// and yields core.RawNewsItem values that survive three filters: an age
// cutoff against the lookback window, an inclusion filter requiring at
// least one AI/ML keyword, and an exclusion filter rejecting commerce and
// unrelated-hardware noise on whole-word matches.
//
// Per-item enrichment (high-resolution image candidates from media
// metadata or Open Graph scraping, readability extraction for thin
// summaries) is strictly best-effort: network failures degrade to the
// plain feed data and never drop or abort an item. A feed that fails to
// parse is logged and skipped; one bad feed never aborts the run.
package feeds
