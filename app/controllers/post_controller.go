package controllers

import (
	"encoding/json"
	"net/http"

	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController with the given service
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// NewPostControllerWithDB creates a new PostController with a DB instance
func NewPostControllerWithDB(db *badger.DB) *PostController {
	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)
	return &PostController{postService: services.NewPostService(postRepo, userRepo)}
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

// Index handles listing all posts with their authors populated
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	sendJSON(w, posts)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in postRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	created, err := pc.postService.CreatePost(&models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	})
	if err != nil {
		handleServiceError(w, err, "Post")
		return
	}
	sendJSON(w, created)
}

// Show handles fetching a single post with its author populated
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.postService.GetPost(id)
	if err != nil {
		handleServiceError(w, err, "Post")
		return
	}
	sendJSON(w, post)
}

// Edit handles updating an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in postRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	updated, err := pc.postService.UpdatePost(id, &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	})
	if err != nil {
		handleServiceError(w, err, "Post")
		return
	}
	sendJSON(w, updated)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := pc.postService.DeletePost(id); err != nil {
		handleServiceError(w, err, "Post")
		return
	}
	sendJSON(w, map[string]string{"message": "Post deleted"})
}
