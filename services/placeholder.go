package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ErrNotFound is returned by lookup methods when the service answers 404.
var ErrNotFound = errors.New("resource not found")

// The wire types below follow the placeholder service's well-known schema.

type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type Comment struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

type Album struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
}

type Photo struct {
	AlbumID      int    `json:"albumId"`
	ID           int    `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// PlaceholderAPI is a typed surface over the placeholder REST service. Lookup
// methods for a single record return ErrNotFound when the service answers 404;
// any other non-2xx status is reported as a plain error.
type PlaceholderAPI struct {
	client *RESTClient
}

func NewPlaceholderAPI(client *RESTClient) *PlaceholderAPI {
	return &PlaceholderAPI{client: client}
}

// Client returns the underlying RESTClient, for requests that the typed
// methods do not cover.
func (a *PlaceholderAPI) Client() *RESTClient { return a.client }

func (a *PlaceholderAPI) Users() ([]User, error) {
	var users []User
	return users, a.client.GetJSON("/users", nil, &users)
}

func (a *PlaceholderAPI) UserByID(id int) (User, error) {
	var user User
	err := a.getOne(fmt.Sprintf("/users/%d", id), &user)
	return user, err
}

func (a *PlaceholderAPI) Posts() ([]Post, error) {
	var posts []Post
	return posts, a.client.GetJSON("/posts", nil, &posts)
}

func (a *PlaceholderAPI) PostByID(id int) (Post, error) {
	var post Post
	err := a.getOne(fmt.Sprintf("/posts/%d", id), &post)
	return post, err
}

func (a *PlaceholderAPI) PostsByUser(userID int) ([]Post, error) {
	var posts []Post
	params := url.Values{"userId": {strconv.Itoa(userID)}}
	return posts, a.client.GetJSON("/posts", params, &posts)
}

// CreatePost submits a new post and returns it with the server-assigned ID.
func (a *PlaceholderAPI) CreatePost(post Post) (Post, error) {
	resp, err := a.client.Post("/posts", post)
	if err != nil {
		return Post{}, err
	}
	if resp.Status != http.StatusCreated {
		return Post{}, fmt.Errorf("unexpected response status %d when creating a post", resp.Status)
	}
	var created Post
	return created, resp.JSON(&created)
}

// UpdatePost replaces the post with post.ID via PUT.
func (a *PlaceholderAPI) UpdatePost(post Post) (Post, error) {
	resp, err := a.client.Put(fmt.Sprintf("/posts/%d", post.ID), post)
	if err != nil {
		return Post{}, err
	}
	if err := expectOKStatus(resp, "updating a post"); err != nil {
		return Post{}, err
	}
	var updated Post
	return updated, resp.JSON(&updated)
}

// PatchPost modifies only the given fields of a post.
func (a *PlaceholderAPI) PatchPost(id int, fields map[string]interface{}) (Post, error) {
	resp, err := a.client.Patch(fmt.Sprintf("/posts/%d", id), fields)
	if err != nil {
		return Post{}, err
	}
	if err := expectOKStatus(resp, "patching a post"); err != nil {
		return Post{}, err
	}
	var patched Post
	return patched, resp.JSON(&patched)
}

func (a *PlaceholderAPI) DeletePost(id int) error {
	resp, err := a.client.Delete(fmt.Sprintf("/posts/%d", id))
	if err != nil {
		return err
	}
	return expectOKStatus(resp, "deleting a post")
}

func (a *PlaceholderAPI) CommentsForPost(postID int) ([]Comment, error) {
	var comments []Comment
	return comments, a.client.GetJSON(fmt.Sprintf("/posts/%d/comments", postID), nil, &comments)
}

func (a *PlaceholderAPI) CommentsByEmail(email string) ([]Comment, error) {
	var comments []Comment
	params := url.Values{"email": {email}}
	return comments, a.client.GetJSON("/comments", params, &comments)
}

func (a *PlaceholderAPI) AlbumsByUser(userID int) ([]Album, error) {
	var albums []Album
	params := url.Values{"userId": {strconv.Itoa(userID)}}
	return albums, a.client.GetJSON("/albums", params, &albums)
}

func (a *PlaceholderAPI) PhotosByAlbum(albumID int) ([]Photo, error) {
	var photos []Photo
	return photos, a.client.GetJSON(fmt.Sprintf("/albums/%d/photos", albumID), nil, &photos)
}

func (a *PlaceholderAPI) getOne(path string, target interface{}) error {
	resp, err := a.client.Get(path, nil)
	if err != nil {
		return err
	}
	if resp.Status == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.Status < 200 || resp.Status >= 300 {
		return fmt.Errorf("unexpected response status %d from %s", resp.Status, path)
	}
	return resp.JSON(target)
}

func expectOKStatus(resp Response, action string) error {
	if resp.Status < 200 || resp.Status >= 300 {
		return fmt.Errorf("unexpected response status %d when %s", resp.Status, action)
	}
	return nil
}
