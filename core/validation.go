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

import (
	"fmt"
	"slices"
)

// ValidateRawNewsItem validates a RawNewsItem according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Text must not be empty
//   - Link must not be empty (it is the dedup key)
//   - Credibility must be within 1-5
//
// NOT validated:
//   - ImageURL (best-effort, may be empty)
//   - Published (feeds without timestamps yield a zero time)
func ValidateRawNewsItem(item *RawNewsItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidRawItem)
	}

	if item.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRawItem, ErrEmptyTitle)
	}

	if item.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRawItem, ErrEmptyText)
	}

	if item.Link == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRawItem, ErrEmptyLink)
	}

	if item.Credibility < 1 || item.Credibility > 5 {
		return fmt.Errorf("%w: %w", ErrInvalidRawItem, ErrInvalidCredibility)
	}

	return nil
}

// ValidateGeneratedArticle validates a GeneratedArticle according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Content must not be empty
//   - Category must be one of the closed label set
//
// NOT validated (the model may legitimately omit them):
//   - TitleEN, Summary, SummaryEN, ContentEN
func ValidateGeneratedArticle(article *GeneratedArticle) error {
	if article == nil {
		return fmt.Errorf("%w: article is nil", ErrInvalidArticle)
	}

	if article.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyTitle)
	}

	if article.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyContent)
	}

	if !slices.Contains(CategoryLabels, article.Category) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidArticle, ErrInvalidCategory, article.Category)
	}

	return nil
}
