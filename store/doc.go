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


// Package store defines the canonical article store consumed by the
// ingestion pipeline and the retrieval layer.
//
// The pipeline is one of several writers of the surrounding publication
// platform, so the interface is intentionally narrow: create-new is the
// sole ingestion write path (never update-in-place), and the unique
// source-URL index is the sole idempotence mechanism. Categories are
// resolved on demand from the closed label set, with icon and description
// defaults from a fixed table.
//
// The production implementation lives in store/postgres. The in-memory
// Memory store backs tests and local runs without a database.
package store
