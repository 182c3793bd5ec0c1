package courseValidator

import (
	"strconv"
	"strings"
	"uplearn/middleware"
	courseModels "uplearn/models/course"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam parses a positive integer route parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid course ID!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// CreateCourse validates the multipart course creation form
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		price, priceErr := strconv.ParseFloat(c.FormValue("price"), 64)
		categoryID, categoryErr := strconv.ParseUint(c.FormValue("categoryId"), 10, 64)

		reqData := &struct {
			CourseName        string  `json:"courseName"`
			CourseDescription string  `json:"courseDescription"`
			WhatYouWillLearn  string  `json:"whatYouWillLearn"`
			Price             float64 `json:"price"`
			CategoryID        uint    `json:"categoryId"`
			Tag               string  `json:"tag"`
			Instructions      string  `json:"instructions"`
			Status            string  `json:"status"`
		}{
			CourseName:        c.FormValue("courseName"),
			CourseDescription: c.FormValue("courseDescription"),
			WhatYouWillLearn:  c.FormValue("whatYouWillLearn"),
			Price:             price,
			CategoryID:        uint(categoryID),
			Tag:               c.FormValue("tag"),
			Instructions:      c.FormValue("instructions"),
			Status:            c.FormValue("status"),
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseName) == "" {
			errors["courseName"] = "Course name is required!"
		}
		if strings.TrimSpace(reqData.CourseDescription) == "" {
			errors["courseDescription"] = "Course description is required!"
		}
		if priceErr != nil || price < 0 {
			errors["price"] = "A valid price is required!"
		}
		if categoryErr != nil || categoryID == 0 {
			errors["categoryId"] = "A valid category ID is required!"
		}
		if reqData.Status != "" && reqData.Status != courseModels.StatusDraft && reqData.Status != courseModels.StatusPublished {
			errors["status"] = "Status must be Draft or Published!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateSection validator middleware
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionName string `json:"sectionName"`
			CourseID    uint   `json:"courseId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.SectionName) == "" {
			errors["sectionName"] = "Section name is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "A valid course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// UpdateSection validator middleware
func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionName string `json:"sectionName"`
			SectionID   uint   `json:"sectionId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.SectionName) == "" {
			errors["sectionName"] = "Section name is required!"
		}
		if reqData.SectionID == 0 {
			errors["sectionId"] = "A valid section ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSectionUpdate", reqData)
		return c.Next()
	}
}

// SectionID validates the :id route parameter for section deletion
func SectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid section ID!", nil)
		}
		c.Locals("sectionID", id)
		return c.Next()
	}
}

// CreateSubSection validates the multipart lecture creation form
func CreateSubSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID, sectionErr := strconv.ParseUint(c.FormValue("sectionId"), 10, 64)

		reqData := &struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			TimeDuration string `json:"timeDuration"`
			SectionID    uint   `json:"sectionId"`
		}{
			Title:        c.FormValue("title"),
			Description:  c.FormValue("description"),
			TimeDuration: c.FormValue("timeDuration"),
			SectionID:    uint(sectionID),
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if sectionErr != nil || sectionID == 0 {
			errors["sectionId"] = "A valid section ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubSection", reqData)
		return c.Next()
	}
}

// UpdateSubSection validates the multipart lecture update form
func UpdateSubSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subSectionID, subSectionErr := strconv.ParseUint(c.FormValue("subSectionId"), 10, 64)

		reqData := &struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			TimeDuration string `json:"timeDuration"`
			SubSectionID uint   `json:"subSectionId"`
		}{
			Title:        c.FormValue("title"),
			Description:  c.FormValue("description"),
			TimeDuration: c.FormValue("timeDuration"),
			SubSectionID: uint(subSectionID),
		}

		if subSectionErr != nil || subSectionID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"subSectionId": "A valid sub-section ID is required!",
			})
		}

		c.Locals("validatedSubSectionUpdate", reqData)
		return c.Next()
	}
}

// SubSectionID validates the :id route parameter for lecture deletion
func SubSectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid sub-section ID!", nil)
		}
		c.Locals("subSectionID", id)
		return c.Next()
	}
}
