package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osservatorio/observer/core"
	"github.com/osservatorio/observer/store"
)

// Store implements store.Store on PostgreSQL.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

const articleColumns = `a.id, a.title, a.title_en, a.slug, a.summary, a.summary_en,
	a.content, a.content_en, a.source_url, a.source_name, a.credibility,
	a.image_url, a.ai_generated, a.created_at, a.updated_at,
	c.id, c.name, c.slug, c.icon, c.description`

func (s *Store) CreateArticle(ctx context.Context, gen *core.GeneratedArticle, item *core.RawNewsItem) (*core.Article, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	category, err := getOrCreateCategory(ctx, tx, gen.Category)
	if err != nil {
		return nil, err
	}

	slug := core.Slugify(gen.Title)
	var taken bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1)`, slug,
	).Scan(&taken); err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		slug = core.SlugWithSuffix(slug, item.Link)
	}

	now := time.Now().UTC()
	article := &core.Article{
		Title:       gen.Title,
		TitleEN:     gen.TitleEN,
		Slug:        slug,
		Summary:     gen.Summary,
		SummaryEN:   gen.SummaryEN,
		Content:     gen.Content,
		ContentEN:   gen.ContentEN,
		Category:    category,
		SourceURL:   item.Link,
		SourceName:  item.SourceName,
		Credibility: item.Credibility,
		ImageURL:    item.ImageURL,
		AIGenerated: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO articles (title, title_en, slug, summary, summary_en,
			content, content_en, category_id, source_url, source_name,
			credibility, image_url, ai_generated, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		 RETURNING id`,
		article.Title, article.TitleEN, article.Slug, article.Summary,
		article.SummaryEN, article.Content, article.ContentEN, category.ID,
		article.SourceURL, article.SourceName, article.Credibility,
		article.ImageURL, article.AIGenerated, article.CreatedAt,
		article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, store.ErrDuplicateSource
		}
		return nil, fmt.Errorf("insert article: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return article, nil
}

func (s *Store) ExistsBySource(ctx context.Context, sourceURL string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE source_url = $1)`, sourceURL,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check source URL: %w", err)
	}
	return exists, nil
}

func (s *Store) ListArticles(ctx context.Context) ([]*core.Article, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+articleColumns+`
		 FROM articles a LEFT JOIN categories c ON c.id = a.category_id
		 ORDER BY a.created_at DESC, a.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

func (s *Store) GetArticles(ctx context.Context, ids ...core.ID) ([]*core.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	// unnest WITH ORDINALITY preserves the caller's order and silently
	// drops missing IDs.
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+articleColumns+`
		 FROM unnest($1::bigint[]) WITH ORDINALITY AS want(id, ord)
		 JOIN articles a ON a.id = want.id
		 LEFT JOIN categories c ON c.id = a.category_id
		 ORDER BY want.ord`, raw)
	if err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

func (s *Store) GlossaryTerms(ctx context.Context) ([]core.GlossaryTerm, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT banned, preferred FROM glossary_terms ORDER BY banned`)
	if err != nil {
		return nil, fmt.Errorf("list glossary terms: %w", err)
	}
	defer rows.Close()

	var terms []core.GlossaryTerm
	for rows.Next() {
		var t core.GlossaryTerm
		if err := rows.Scan(&t.Banned, &t.Preferred); err != nil {
			return nil, fmt.Errorf("scan glossary term: %w", err)
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

func getOrCreateCategory(ctx context.Context, tx *sql.Tx, label core.CategoryLabel) (*core.Category, error) {
	template := store.NewCategory(label)

	// The no-op update makes RETURNING fire on conflict as well, so one
	// round trip covers both the existing and the freshly created row.
	category := &core.Category{}
	err := tx.QueryRowContext(ctx,
		`INSERT INTO categories (name, slug, icon, description)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (slug) DO UPDATE SET name = categories.name
		 RETURNING id, name, slug, icon, description`,
		template.Name, template.Slug, template.Icon, template.Description,
	).Scan(&category.ID, &category.Name, &category.Slug, &category.Icon, &category.Description)
	if err != nil {
		return nil, fmt.Errorf("get or create category %q: %w", label, err)
	}
	return category, nil
}

func scanArticles(rows *sql.Rows) ([]*core.Article, error) {
	var articles []*core.Article
	for rows.Next() {
		a := &core.Article{}
		var (
			catID   sql.NullInt64
			catName sql.NullString
			catSlug sql.NullString
			catIcon sql.NullString
			catDesc sql.NullString
		)
		err := rows.Scan(
			&a.ID, &a.Title, &a.TitleEN, &a.Slug, &a.Summary, &a.SummaryEN,
			&a.Content, &a.ContentEN, &a.SourceURL, &a.SourceName,
			&a.Credibility, &a.ImageURL, &a.AIGenerated, &a.CreatedAt,
			&a.UpdatedAt,
			&catID, &catName, &catSlug, &catIcon, &catDesc,
		)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		if catID.Valid {
			a.Category = &core.Category{
				ID:          core.ID(catID.Int64),
				Name:        catName.String,
				Slug:        catSlug.String,
				Icon:        catIcon.String,
				Description: catDesc.String,
			}
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
