package core

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// NewRouter constructs the Gin engine with routes wired.
func NewRouter(cfg Config, authService AuthService, posts PostRepository) *gin.Engine {
	r := gin.Default()

	r.Use(CORSMiddleware())
	r.Use(RequestLogMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/register", func(c *gin.Context) {
			var req struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				respondMessage(c, http.StatusBadRequest, "Username and password are required")
				return
			}

			err := authService.Register(c.Request.Context(), req.Username, req.Password)
			switch {
			case err == nil:
				respondMessage(c, http.StatusCreated, "User registered successfully")
			case errors.Is(err, ErrMissingCredentials):
				respondMessage(c, http.StatusBadRequest, "Username and password are required")
			case errors.Is(err, ErrDuplicateUser):
				respondMessage(c, http.StatusBadRequest, "User already exists")
			default:
				respondMessage(c, http.StatusInternalServerError, "Server error")
			}
		})

		api.POST("/login", func(c *gin.Context) {
			var req struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				respondMessage(c, http.StatusBadRequest, "Username and password are required")
				return
			}

			token, err := authService.Login(c.Request.Context(), req.Username, req.Password)
			switch {
			case err == nil:
				c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
			case errors.Is(err, ErrMissingCredentials):
				respondMessage(c, http.StatusBadRequest, "Username and password are required")
			case errors.Is(err, ErrUserNotFound):
				respondMessage(c, http.StatusUnauthorized, "User not found")
			case errors.Is(err, ErrWrongPassword):
				respondMessage(c, http.StatusUnauthorized, "Incorrect password")
			default:
				respondMessage(c, http.StatusInternalServerError, "Server error")
			}
		})

		api.POST("/posts", func(c *gin.Context) {
			var req struct {
				Title   string   `json:"title"`
				Content string   `json:"content"`
				Author  string   `json:"author"`
				Tags    []string `json:"tags"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				respondMessage(c, http.StatusBadRequest, "invalid json")
				return
			}

			post, err := posts.Create(c.Request.Context(), req.Title, req.Content, req.Author, req.Tags)
			if err != nil {
				respondMessage(c, http.StatusBadRequest, err.Error())
				return
			}
			c.JSON(http.StatusCreated, post)
		})

		api.GET("/posts", func(c *gin.Context) {
			items, err := posts.List(c.Request.Context())
			if err != nil {
				respondMessage(c, http.StatusInternalServerError, err.Error())
				return
			}
			c.JSON(http.StatusOK, items)
		})

		api.GET("/posts/:id", func(c *gin.Context) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil || id <= 0 {
				respondMessage(c, http.StatusBadRequest, "invalid id")
				return
			}

			post, err := posts.Get(c.Request.Context(), id)
			if err != nil {
				if errors.Is(err, ErrPostNotFound) {
					respondMessage(c, http.StatusNotFound, "Post not found")
					return
				}
				respondMessage(c, http.StatusInternalServerError, err.Error())
				return
			}
			c.JSON(http.StatusOK, post)
		})

		api.PUT("/posts/:id", func(c *gin.Context) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil || id <= 0 {
				respondMessage(c, http.StatusBadRequest, "invalid id")
				return
			}
			var req struct {
				Title   string   `json:"title"`
				Content string   `json:"content"`
				Author  string   `json:"author"`
				Tags    []string `json:"tags"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				respondMessage(c, http.StatusBadRequest, "invalid json")
				return
			}

			post, err := posts.Update(c.Request.Context(), id, req.Title, req.Content, req.Author, req.Tags)
			if err != nil {
				if errors.Is(err, ErrPostNotFound) {
					respondMessage(c, http.StatusNotFound, "Post not found")
					return
				}
				respondMessage(c, http.StatusBadRequest, err.Error())
				return
			}
			c.JSON(http.StatusOK, post)
		})

		api.GET("/posts/category/:tag", func(c *gin.Context) {
			items, err := posts.ListByTag(c.Request.Context(), c.Param("tag"))
			if err != nil {
				respondMessage(c, http.StatusInternalServerError, err.Error())
				return
			}
			c.JSON(http.StatusOK, items)
		})

		api.DELETE("/posts/:id", func(c *gin.Context) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil || id <= 0 {
				respondMessage(c, http.StatusBadRequest, "invalid id")
				return
			}

			if err := posts.Delete(c.Request.Context(), id); err != nil {
				if errors.Is(err, ErrPostNotFound) {
					respondMessage(c, http.StatusNotFound, "Post not found")
					return
				}
				respondMessage(c, http.StatusInternalServerError, err.Error())
				return
			}
			respondMessage(c, http.StatusOK, "Post deleted successfully")
		})
	}

	return r
}
