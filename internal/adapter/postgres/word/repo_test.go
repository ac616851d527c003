package word_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

func newRepo(t *testing.T) (*word.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return word.New(pool), pool
}

func TestRepo_Create_AndListByTopic(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	l := testhelper.SeedLevel(t, pool)
	tp := testhelper.SeedTopic(t, pool, l.ID)

	for _, p := range [][2]string{{"der Hund", "狗"}, {"die Katze", "猫"}, {"das Pferd", "马"}} {
		if _, err := repo.Create(ctx, domain.WordInput{German: p[0], Chinese: p[1], LevelID: l.ID, TopicID: tp.ID}); err != nil {
			t.Fatalf("Create %q: %v", p[0], err)
		}
	}

	words, err := repo.ListByTopic(ctx, l.ID, tp.ID)
	if err != nil {
		t.Fatalf("ListByTopic: unexpected error: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	if words[0].German != "der Hund" || words[0].Chinese != "狗" {
		t.Errorf("first word mismatch: got %+v", words[0])
	}

	count, err := repo.CountByTopic(ctx, tp.ID)
	if err != nil {
		t.Fatalf("CountByTopic: unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("CountByTopic: got %d, want 3", count)
	}
}

func TestRepo_ListByTopic_OtherLevelIsEmpty(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	l := testhelper.SeedLevel(t, pool)
	other := testhelper.SeedLevel(t, pool)
	tp := testhelper.SeedTopic(t, pool, l.ID)
	testhelper.SeedWord(t, pool, tp, "der Hund", "狗")

	words, err := repo.ListByTopic(ctx, other.ID, tp.ID)
	if err != nil {
		t.Fatalf("ListByTopic: unexpected error: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("expected no words for mismatched level, got %d", len(words))
	}
}

func TestRepo_ExistsInTopic(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	l := testhelper.SeedLevel(t, pool)
	tp := testhelper.SeedTopic(t, pool, l.ID)
	otherTopic := testhelper.SeedTopic(t, pool, l.ID)
	testhelper.SeedWord(t, pool, tp, "der Hund", "狗")

	tests := []struct {
		name    string
		german  string
		topicID uuid.UUID
		want    bool
	}{
		{name: "same topic", german: "der Hund", topicID: tp.ID, want: true},
		{name: "case differs", german: "Der Hund", topicID: tp.ID, want: false},
		{name: "other topic", german: "der Hund", topicID: otherTopic.ID, want: false},
	}

	for _, tt := range tests {
		got, err := repo.ExistsInTopic(ctx, tt.german, l.ID, tt.topicID)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRepo_Create_RolledBackWithTx(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	l := testhelper.SeedLevel(t, pool)
	tp := testhelper.SeedTopic(t, pool, l.ID)
	tx := postgres.NewTxManager(pool)

	boom := errors.New("boom")
	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := repo.Create(txCtx, domain.WordInput{German: "der Hund", Chinese: "狗", LevelID: l.ID, TopicID: tp.ID}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("RunInTx: expected boom, got %v", err)
	}

	count, err := repo.CountByTopic(ctx, tp.ID)
	if err != nil {
		t.Fatalf("CountByTopic: unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected rollback to discard the insert, got %d words", count)
	}
}
