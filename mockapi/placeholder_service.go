package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/launchdarkly/webqa-harness/framework"
	"github.com/launchdarkly/webqa-harness/services"
)

// PlaceholderService is an in-process stand-in for the placeholder REST API.
// Reads come from the canned dataset; writes behave like the real service,
// which echoes them back without persisting anything, so the service is
// stateless and every test sees the same data.
type PlaceholderService struct {
	data        *dataset
	handler     http.Handler
	debugLogger framework.Logger
}

func NewPlaceholderService(debugLogger framework.Logger) *PlaceholderService {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	s := &PlaceholderService{
		data:        newDataset(),
		debugLogger: debugLogger,
	}

	router := mux.NewRouter()
	router.HandleFunc("/users", s.serveUsers).Methods("GET")
	router.HandleFunc("/users/{id}", s.serveUserByID).Methods("GET")
	router.HandleFunc("/posts", s.servePosts).Methods("GET")
	router.HandleFunc("/posts", s.serveCreatePost).Methods("POST")
	router.HandleFunc("/posts/{id}", s.servePostByID).Methods("GET")
	router.HandleFunc("/posts/{id}", s.serveReplacePost).Methods("PUT")
	router.HandleFunc("/posts/{id}", s.servePatchPost).Methods("PATCH")
	router.HandleFunc("/posts/{id}", s.serveDeletePost).Methods("DELETE")
	router.HandleFunc("/posts/{id}/comments", s.servePostComments).Methods("GET")
	router.HandleFunc("/comments", s.serveComments).Methods("GET")
	router.HandleFunc("/albums", s.serveAlbums).Methods("GET")
	router.HandleFunc("/albums/{id}/photos", s.serveAlbumPhotos).Methods("GET")
	router.HandleFunc("/photos", s.servePhotos).Methods("GET")
	s.handler = router

	return s
}

func (s *PlaceholderService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.debugLogger.Printf("placeholder service: %s %s", r.Method, r.URL)
	s.handler.ServeHTTP(w, r)
}

func (s *PlaceholderService) serveUsers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.data.users)
}

func (s *PlaceholderService) serveUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if ok {
		for _, u := range s.data.users {
			if u.ID == id {
				s.writeJSON(w, http.StatusOK, u)
				return
			}
		}
	}
	s.writeNotFound(w)
}

func (s *PlaceholderService) servePosts(w http.ResponseWriter, r *http.Request) {
	posts := s.data.posts
	if userID, ok := queryInt(r, "userId"); ok {
		posts = nil
		for _, p := range s.data.posts {
			if p.UserID == userID {
				posts = append(posts, p)
			}
		}
	}
	s.writeJSON(w, http.StatusOK, nonNil(posts))
}

func (s *PlaceholderService) servePostByID(w http.ResponseWriter, r *http.Request) {
	if post, ok := s.findPost(r); ok {
		s.writeJSON(w, http.StatusOK, post)
		return
	}
	s.writeNotFound(w)
}

func (s *PlaceholderService) serveCreatePost(w http.ResponseWriter, r *http.Request) {
	var post services.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	post.ID = createdPostID
	s.writeJSON(w, http.StatusCreated, post)
}

func (s *PlaceholderService) serveReplacePost(w http.ResponseWriter, r *http.Request) {
	existing, ok := s.findPost(r)
	if !ok {
		s.writeNotFound(w)
		return
	}
	var post services.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	post.ID = existing.ID
	s.writeJSON(w, http.StatusOK, post)
}

func (s *PlaceholderService) servePatchPost(w http.ResponseWriter, r *http.Request) {
	post, ok := s.findPost(r)
	if !ok {
		s.writeNotFound(w)
		return
	}
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	for name, raw := range fields {
		switch name {
		case "title":
			_ = json.Unmarshal(raw, &post.Title)
		case "body":
			_ = json.Unmarshal(raw, &post.Body)
		case "userId":
			_ = json.Unmarshal(raw, &post.UserID)
		}
	}
	s.writeJSON(w, http.StatusOK, post)
}

func (s *PlaceholderService) serveDeletePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.findPost(r); !ok {
		s.writeNotFound(w)
		return
	}
	s.writeJSON(w, http.StatusOK, struct{}{})
}

func (s *PlaceholderService) servePostComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeNotFound(w)
		return
	}
	var comments []services.Comment
	for _, c := range s.data.comments {
		if c.PostID == id {
			comments = append(comments, c)
		}
	}
	s.writeJSON(w, http.StatusOK, nonNil(comments))
}

func (s *PlaceholderService) serveComments(w http.ResponseWriter, r *http.Request) {
	comments := s.data.comments
	if email := r.URL.Query().Get("email"); email != "" {
		comments = nil
		for _, c := range s.data.comments {
			if c.Email == email {
				comments = append(comments, c)
			}
		}
	}
	s.writeJSON(w, http.StatusOK, nonNil(comments))
}

func (s *PlaceholderService) serveAlbums(w http.ResponseWriter, r *http.Request) {
	albums := s.data.albums
	if userID, ok := queryInt(r, "userId"); ok {
		albums = nil
		for _, a := range s.data.albums {
			if a.UserID == userID {
				albums = append(albums, a)
			}
		}
	}
	s.writeJSON(w, http.StatusOK, nonNil(albums))
}

func (s *PlaceholderService) serveAlbumPhotos(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeNotFound(w)
		return
	}
	var photos []services.Photo
	for _, p := range s.data.photos {
		if p.AlbumID == id {
			photos = append(photos, p)
		}
	}
	s.writeJSON(w, http.StatusOK, nonNil(photos))
}

func (s *PlaceholderService) servePhotos(w http.ResponseWriter, r *http.Request) {
	photos := s.data.photos
	if albumID, ok := queryInt(r, "albumId"); ok {
		photos = nil
		for _, p := range s.data.photos {
			if p.AlbumID == albumID {
				photos = append(photos, p)
			}
		}
	}
	s.writeJSON(w, http.StatusOK, nonNil(photos))
}

func (s *PlaceholderService) findPost(r *http.Request) (services.Post, bool) {
	if id, ok := pathID(r); ok {
		for _, p := range s.data.posts {
			if p.ID == id {
				return p, true
			}
		}
	}
	return services.Post{}, false
}

// The real service answers 404 with an empty JSON object, not an empty body.
func (s *PlaceholderService) writeNotFound(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusNotFound, struct{}{})
}

func (s *PlaceholderService) writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

func queryInt(r *http.Request, name string) (int, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return -1, true // present but unparseable, matches nothing
	}
	return n, true
}

// nonNil keeps empty query results rendering as [] rather than null.
func nonNil[V any](items []V) []V {
	if items == nil {
		return []V{}
	}
	return items
}
