package mockapi

import (
	"fmt"

	"github.com/launchdarkly/webqa-harness/services"
)

// The canned dataset mirrors the public placeholder service's shape: 10 users
// with the familiar names, 10 posts per user, 5 comments per post, 10 albums
// per user, and 50 photos per album. The first record of each collection
// carries the exact well-known field values, so assertions written against
// the real service hold here too.

const (
	userCount       = 10
	postsPerUser    = 10
	commentsPerPost = 5
	albumsPerUser   = 10
	photosPerAlbum  = 50

	// The real service always reports this ID for a created post.
	createdPostID = 101
)

type dataset struct {
	users    []services.User
	posts    []services.Post
	comments []services.Comment
	albums   []services.Album
	photos   []services.Photo
}

func newDataset() *dataset {
	d := &dataset{users: cannedUsers()}

	for postID := 1; postID <= userCount*postsPerUser; postID++ {
		post := services.Post{
			UserID: (postID-1)/postsPerUser + 1,
			ID:     postID,
			Title:  fmt.Sprintf("placeholder post %d", postID),
			Body:   fmt.Sprintf("body of placeholder post %d", postID),
		}
		if postID == 1 {
			post.Title = "sunt aut facere repellat provident occaecati excepturi optio reprehenderit"
			post.Body = "quia et suscipit\nsuscipit recusandae consequuntur expedita et cum\n" +
				"reprehenderit molestiae ut ut quas totam\nnostrum rerum est autem sunt rem eveniet architecto"
		}
		d.posts = append(d.posts, post)

		for i := 1; i <= commentsPerPost; i++ {
			commentID := (postID-1)*commentsPerPost + i
			comment := services.Comment{
				PostID: postID,
				ID:     commentID,
				Name:   fmt.Sprintf("comment %d on post %d", commentID, postID),
				Email:  fmt.Sprintf("commenter%d@example.net", commentID),
				Body:   fmt.Sprintf("body of comment %d", commentID),
			}
			if commentID == 1 {
				comment.Name = "id labore ex et quam laborum"
				comment.Email = "Eliseo@gardner.biz"
			}
			d.comments = append(d.comments, comment)
		}
	}

	for albumID := 1; albumID <= userCount*albumsPerUser; albumID++ {
		album := services.Album{
			UserID: (albumID-1)/albumsPerUser + 1,
			ID:     albumID,
			Title:  fmt.Sprintf("placeholder album %d", albumID),
		}
		if albumID == 1 {
			album.Title = "quidem molestiae enim"
		}
		d.albums = append(d.albums, album)

		for i := 1; i <= photosPerAlbum; i++ {
			photoID := (albumID-1)*photosPerAlbum + i
			d.photos = append(d.photos, services.Photo{
				AlbumID:      albumID,
				ID:           photoID,
				Title:        fmt.Sprintf("placeholder photo %d", photoID),
				URL:          fmt.Sprintf("https://via.placeholder.com/600/photo%d", photoID),
				ThumbnailURL: fmt.Sprintf("https://via.placeholder.com/150/photo%d", photoID),
			})
		}
	}

	return d
}

func cannedUsers() []services.User {
	type seed struct{ name, username, email string }
	seeds := []seed{
		{"Leanne Graham", "Bret", "Sincere@april.biz"},
		{"Ervin Howell", "Antonette", "Shanna@melissa.tv"},
		{"Clementine Bauch", "Samantha", "Nathan@yesenia.net"},
		{"Patricia Lebsack", "Karianne", "Julianne.OConner@kory.org"},
		{"Chelsey Dietrich", "Kamren", "Lucio_Hettinger@annie.ca"},
		{"Mrs. Dennis Schulist", "Leopoldo_Corkery", "Karley_Dach@jasper.info"},
		{"Kurtis Weissnat", "Elwyn.Skiles", "Telly.Hoeger@billy.biz"},
		{"Nicholas Runolfsdottir V", "Maxime_Nienow", "Sherwood@rosamond.me"},
		{"Glenna Reichert", "Delphine", "Chaim_McDermott@dana.io"},
		{"Clementina DuBuque", "Moriah.Stanton", "Rey.Padberg@karina.biz"},
	}

	users := make([]services.User, 0, len(seeds))
	for i, s := range seeds {
		users = append(users, services.User{
			ID:       i + 1,
			Name:     s.name,
			Username: s.username,
			Email:    s.email,
			Address: services.Address{
				Street:  fmt.Sprintf("%d Placeholder Street", i+1),
				Suite:   fmt.Sprintf("Apt. %d", 100+i),
				City:    "Gwenborough",
				Zipcode: fmt.Sprintf("92998-%04d", 3874+i),
				Geo:     services.Geo{Lat: "-37.3159", Lng: "81.1496"},
			},
			Phone:   fmt.Sprintf("1-770-736-80%02d", 31+i),
			Website: "hildegard.org",
			Company: services.Company{
				Name:        "Romaguera-Crona",
				CatchPhrase: "Multi-layered client-server neural-net",
				BS:          "harness real-time e-markets",
			},
		})
	}
	// User 1's full record matches the real service exactly.
	users[0].Address.Street = "Kulas Light"
	users[0].Address.Suite = "Apt. 556"
	users[0].Address.Zipcode = "92998-3874"
	users[0].Phone = "1-770-736-8031 x56442"
	return users
}
