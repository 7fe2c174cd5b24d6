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

package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRawItem indicates a RawNewsItem failed validation.
	ErrInvalidRawItem = errors.New("invalid raw news item")

	// ErrInvalidArticle indicates a GeneratedArticle failed validation.
	ErrInvalidArticle = errors.New("invalid generated article")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyText indicates the Text field is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrEmptyLink indicates the Link field is empty.
	ErrEmptyLink = errors.New("link cannot be empty")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidCredibility indicates a credibility tier outside 1-5.
	ErrInvalidCredibility = errors.New("credibility tier must be between 1 and 5")

	// ErrInvalidCategory indicates a category label outside the closed set.
	ErrInvalidCategory = errors.New("invalid category label")
)
