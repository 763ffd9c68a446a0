package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/quill/internal/sessions/domain"
)

// testRepo creates a fresh database and repository for a test.
func testRepo(t *testing.T) domain.EditSessionRepository {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "NewDB should succeed")
	t.Cleanup(func() { _ = db.Close() })

	return db.EditSessionRepository()
}

func TestEditSessionRepository_SaveNew(t *testing.T) {
	repo := testRepo(t)

	session := domain.NewEditSession(uuid.NewString(), "/work/main.rs")
	session.SetCursor(42, 3, 7)
	session.SetLanguage("rust")
	session.SetTheme("default")

	require.NoError(t, repo.Save(session))
	require.Greater(t, session.ID(), int64(0), "Save should assign the database ID")
}

func TestEditSessionRepository_SaveAndFindByPath(t *testing.T) {
	repo := testRepo(t)

	session := domain.NewEditSession(uuid.NewString(), "/work/main.rs")
	session.SetCursor(42, 3, 7)
	session.SetLanguage("rust")
	session.SetTheme("catppuccin-mocha")
	require.NoError(t, repo.Save(session))

	found, err := repo.FindByPath("/work/main.rs")
	require.NoError(t, err)
	require.Equal(t, session.ID(), found.ID())
	require.Equal(t, session.GUID(), found.GUID())
	require.Equal(t, 42, found.Offset())
	require.Equal(t, 3, found.Line())
	require.Equal(t, 7, found.Column())
	require.Equal(t, "rust", found.Language())
	require.Equal(t, "catppuccin-mocha", found.Theme())
}

func TestEditSessionRepository_FindByPath_NotFound(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.FindByPath("/work/nothing.rs")
	require.Error(t, err)

	var notFound *domain.EditSessionNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "/work/nothing.rs", notFound.Path)
}

func TestEditSessionRepository_SaveExistingUpdates(t *testing.T) {
	repo := testRepo(t)

	session := domain.NewEditSession(uuid.NewString(), "/work/main.rs")
	require.NoError(t, repo.Save(session))
	id := session.ID()

	session.SetCursor(99, 10, 2)
	session.SetLanguage("go")
	require.NoError(t, repo.Save(session))
	require.Equal(t, id, session.ID(), "updating must not change the ID")

	found, err := repo.FindByPath("/work/main.rs")
	require.NoError(t, err)
	require.Equal(t, 99, found.Offset())
	require.Equal(t, 10, found.Line())
	require.Equal(t, 2, found.Column())
	require.Equal(t, "go", found.Language())
}

func TestEditSessionRepository_EmptyLanguageAndThemeRoundTrip(t *testing.T) {
	repo := testRepo(t)

	session := domain.NewEditSession(uuid.NewString(), "/work/notes.txt")
	require.NoError(t, repo.Save(session))

	found, err := repo.FindByPath("/work/notes.txt")
	require.NoError(t, err)
	require.Empty(t, found.Language())
	require.Empty(t, found.Theme())
}

func TestEditSessionRepository_Delete(t *testing.T) {
	repo := testRepo(t)

	session := domain.NewEditSession(uuid.NewString(), "/work/main.rs")
	require.NoError(t, repo.Save(session))

	require.NoError(t, repo.Delete("/work/main.rs"))

	_, err := repo.FindByPath("/work/main.rs")
	var notFound *domain.EditSessionNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestEditSessionRepository_Delete_NotFound(t *testing.T) {
	repo := testRepo(t)

	err := repo.Delete("/work/nothing.rs")
	var notFound *domain.EditSessionNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestEditSessionRepository_ListRecent(t *testing.T) {
	repo := testRepo(t)

	// Distinct updated_at values so the ordering is deterministic
	older := domain.ReconstituteEditSession(
		0, uuid.NewString(), "/work/old.rs", 0, 0, 0, "rust", "",
		time.Unix(1000, 0), time.Unix(1000, 0),
	)
	newer := domain.ReconstituteEditSession(
		0, uuid.NewString(), "/work/new.js", 5, 1, 2, "javascript", "",
		time.Unix(2000, 0), time.Unix(2000, 0),
	)
	require.NoError(t, repo.Save(older))
	require.NoError(t, repo.Save(newer))

	sessions, err := repo.ListRecent(domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "/work/new.js", sessions[0].Path(), "most recent first")
	require.Equal(t, "/work/old.rs", sessions[1].Path())
}

func TestEditSessionRepository_ListRecent_FilterByLanguage(t *testing.T) {
	repo := testRepo(t)

	rust := domain.NewEditSession(uuid.NewString(), "/work/main.rs")
	rust.SetLanguage("rust")
	js := domain.NewEditSession(uuid.NewString(), "/work/app.js")
	js.SetLanguage("javascript")
	require.NoError(t, repo.Save(rust))
	require.NoError(t, repo.Save(js))

	sessions, err := repo.ListRecent(domain.ListFilter{Language: "rust"})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, "/work/main.rs", sessions[0].Path())
}

func TestEditSessionRepository_ListRecent_Limit(t *testing.T) {
	repo := testRepo(t)

	for i, path := range []string{"/work/a.rs", "/work/b.rs", "/work/c.rs"} {
		s := domain.ReconstituteEditSession(
			0, uuid.NewString(), path, 0, 0, 0, "", "",
			time.Unix(int64(1000+i), 0), time.Unix(int64(1000+i), 0),
		)
		require.NoError(t, repo.Save(s))
	}

	sessions, err := repo.ListRecent(domain.ListFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "/work/c.rs", sessions[0].Path())
}

func TestEditSessionRepository_PathIsUnique(t *testing.T) {
	repo := testRepo(t)

	first := domain.NewEditSession(uuid.NewString(), "/work/main.rs")
	require.NoError(t, repo.Save(first))

	duplicate := domain.NewEditSession(uuid.NewString(), "/work/main.rs")
	require.Error(t, repo.Save(duplicate), "second insert for the same path must fail")
}
