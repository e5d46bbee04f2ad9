package webtests

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/webqa-harness/framework/qatest"
	"github.com/launchdarkly/webqa-harness/services"
)

func doPlaceholderAPITests(t *qatest.T) {
	t.Run("list users", func(t *qatest.T) {
		users, err := placeholderAPI(t).Users()
		require.NoError(t, err)
		require.Len(t, users, 10)
		expect := matchesUserSchema()
		for _, user := range users {
			expect.Check(t, user)
		}
	})

	t.Run("user by id", func(t *qatest.T) {
		user, err := placeholderAPI(t).UserByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Leanne Graham", user.Name)
		assert.Equal(t, "Bret", user.Username)
		assert.Equal(t, "Sincere@april.biz", user.Email)
		assert.NotEmpty(t, user.Address.City)
	})

	t.Run("unknown user", func(t *qatest.T) {
		_, err := placeholderAPI(t).UserByID(999)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound), "expected ErrNotFound, got: %s", err)
	})

	t.Run("post by id", func(t *qatest.T) {
		expect := matchesPostSchema()
		for _, id := range []int{1, 2, 5, 10} {
			t.Run(fmt.Sprintf("id=%d", id), func(t *qatest.T) {
				post, err := placeholderAPI(t).PostByID(id)
				require.NoError(t, err)
				assert.Equal(t, id, post.ID)
				expect.Check(t, post)
			})
		}
	})

	t.Run("unknown post", func(t *qatest.T) {
		_, err := placeholderAPI(t).PostByID(599)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound), "expected ErrNotFound, got: %s", err)
	})

	t.Run("posts filtered by user", func(t *qatest.T) {
		posts, err := placeholderAPI(t).PostsByUser(3)
		require.NoError(t, err)
		require.Len(t, posts, 10)
		for _, post := range posts {
			assert.Equal(t, 3, post.UserID)
		}
	})

	t.Run("create post", func(t *qatest.T) {
		f := sharedFaker(t)
		post := services.Post{
			UserID: 1,
			Title:  f.Sentence(4),
			Body:   f.Sentence(12),
		}
		created, err := placeholderAPI(t).CreatePost(post)
		require.NoError(t, err)
		assert.Equal(t, 101, created.ID)
		assert.Equal(t, post.UserID, created.UserID)
		assert.Equal(t, post.Title, created.Title)
		assert.Equal(t, post.Body, created.Body)
	})

	t.Run("update post", func(t *qatest.T) {
		f := sharedFaker(t)
		updated, err := placeholderAPI(t).UpdatePost(services.Post{
			UserID: 1,
			ID:     1,
			Title:  f.Sentence(3),
			Body:   f.Sentence(8),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.ID)
		assert.NotEmpty(t, updated.Title)
	})

	t.Run("patch post", func(t *qatest.T) {
		api := placeholderAPI(t)
		original, err := api.PostByID(1)
		require.NoError(t, err)

		patched, err := api.PatchPost(1, map[string]interface{}{"title": "patched title"})
		require.NoError(t, err)
		assert.Equal(t, "patched title", patched.Title)
		assert.Equal(t, original.Body, patched.Body, "a patch of the title should leave the body alone")
	})

	t.Run("delete post", func(t *qatest.T) {
		require.NoError(t, placeholderAPI(t).DeletePost(1))
	})

	t.Run("posts belong to their user", func(t *qatest.T) {
		api := placeholderAPI(t)
		user, err := api.UserByID(5)
		require.NoError(t, err)

		posts, err := api.PostsByUser(user.ID)
		require.NoError(t, err)
		require.Len(t, posts, 10)
		for _, post := range posts {
			assert.Equal(t, user.ID, post.UserID)
		}
	})

	t.Run("comments for post", func(t *qatest.T) {
		comments, err := placeholderAPI(t).CommentsForPost(1)
		require.NoError(t, err)
		require.Len(t, comments, 5)
		var emails []string
		for _, comment := range comments {
			assert.Equal(t, 1, comment.PostID)
			assert.Contains(t, comment.Email, "@")
			emails = append(emails, comment.Email)
		}
		assert.Contains(t, emails, "Eliseo@gardner.biz")
	})

	t.Run("comments filtered by email", func(t *qatest.T) {
		comments, err := placeholderAPI(t).CommentsByEmail("Eliseo@gardner.biz")
		require.NoError(t, err)
		require.NotEmpty(t, comments)
		var ids []int
		for _, comment := range comments {
			assert.Equal(t, "Eliseo@gardner.biz", comment.Email)
			ids = append(ids, comment.ID)
		}
		assert.Contains(t, ids, 1)
	})

	t.Run("albums and photos chain", func(t *qatest.T) {
		api := placeholderAPI(t)
		albums, err := api.AlbumsByUser(1)
		require.NoError(t, err)
		require.Len(t, albums, 10)
		for _, album := range albums {
			assert.Equal(t, 1, album.UserID)
		}

		photos, err := api.PhotosByAlbum(albums[0].ID)
		require.NoError(t, err)
		require.Len(t, photos, 50)
		for _, photo := range photos {
			assert.Equal(t, albums[0].ID, photo.AlbumID)
			assert.True(t, strings.HasPrefix(photo.URL, "https://"),
				"photo URL %q should be served over https", photo.URL)
			assert.True(t, strings.HasPrefix(photo.ThumbnailURL, "https://"),
				"thumbnail URL %q should be served over https", photo.ThumbnailURL)
		}
	})
}
