package server

import (
	"github.com/gofiber/fiber/v2"

	"northgate/internal/models"
	"northgate/internal/validation"
)

// BlogRequest is the create/update payload for a blog post.
type BlogRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Excerpt     string   `json:"excerpt" validate:"omitempty"`
	Content     string   `json:"content" validate:"required"`
	Author      string   `json:"author" validate:"omitempty,max=120"`
	PublishDate string   `json:"publish_date" validate:"omitempty,max=40"`
	ReadTime    string   `json:"read_time" validate:"omitempty,max=40"`
	Image       string   `json:"image" validate:"omitempty,url,max=500"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=60"`
	Featured    bool     `json:"featured"`
	Published   bool     `json:"published"`
}

// GetBlogs handles GET /api/blogs?published=true
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	ctx := c.Context()
	publishedOnly := c.QueryBool("published", false)

	posts, err := s.blogRepo.List(ctx, publishedOnly)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return respondData(c, fiber.StatusOK, posts)
}

// GetBlog handles GET /api/blogs/:id
func (s *Server) GetBlog(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	return respondData(c, fiber.StatusOK, post)
}

// CreateBlog handles POST /api/blogs
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	ctx := c.Context()

	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	post := &models.BlogPost{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Author:      req.Author,
		PublishDate: req.PublishDate,
		ReadTime:    req.ReadTime,
		Image:       req.Image,
		Tags:        models.StringList(req.Tags),
		Featured:    req.Featured,
		Published:   req.Published,
	}
	if err := s.blogRepo.Create(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return respondData(c, fiber.StatusCreated, post)
}

// UpdateBlog handles PUT /api/blogs/:id
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.Author = req.Author
	post.PublishDate = req.PublishDate
	post.ReadTime = req.ReadTime
	post.Image = req.Image
	post.Tags = models.StringList(req.Tags)
	post.Featured = req.Featured
	post.Published = req.Published

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return respondData(c, fiber.StatusOK, post)
}

// DeleteBlog handles DELETE /api/blogs/:id
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
