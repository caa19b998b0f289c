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

// UserController handles HTTP requests for users
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController with the given service
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// NewUserControllerWithDB creates a new UserController with a DB instance
func NewUserControllerWithDB(db *badger.DB) *UserController {
	userRepo := repositories.NewBadgerUserRepository(db)
	return &UserController{userService: services.NewUserService(userRepo)}
}

type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsActive  *bool  `json:"isActive"`
}

type updateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Index handles listing all users
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := uc.userService.ListUsers()
	if err != nil {
		sendMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	sendJSON(w, users)
}

// Create handles creating a new user
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var in createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	user := &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		IsActive:  true,
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	created, err := uc.userService.CreateUser(user)
	if err != nil {
		handleServiceError(w, err, "User")
		return
	}
	sendJSON(w, created)
}

// Show handles fetching a single user
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := uc.userService.GetUser(id)
	if err != nil {
		handleServiceError(w, err, "User")
		return
	}
	sendJSON(w, user)
}

// Edit handles updating an existing user
func (uc *UserController) Edit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendMessage(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	updated, err := uc.userService.UpdateUser(id, &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	})
	if err != nil {
		handleServiceError(w, err, "User")
		return
	}
	sendJSON(w, updated)
}

// Delete handles deleting a user
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := uc.userService.DeleteUser(id); err != nil {
		handleServiceError(w, err, "User")
		return
	}
	sendJSON(w, map[string]string{"message": "User deleted"})
}
