// 📁 controller/student_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/features/students/dto"
	"almanar_backend/internals/features/students/model"
	helpers "almanar_backend/internals/helpers"
)

type StudentController struct {
	Store *collections.Store[model.Student]
}

func NewStudentController(store *collections.Store[model.Student]) *StudentController {
	return &StudentController{Store: store}
}

// 🟢 GET ALL (admin): members hold personal data, so no public listing
func (ctrl *StudentController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	sector := c.Query("sector")
	status := c.Query("status")
	if sector != "" || status != "" {
		filtered := make([]model.Student, 0, len(items))
		for _, s := range items {
			if sector != "" && s.StudentSector != sector {
				continue
			}
			if status != "" && s.StudentStatus != status {
				continue
			}
			filtered = append(filtered, s)
		}
		items = filtered
	}

	p := helpers.ParsePagination(c, helpers.AdminOpts)
	return c.JSON(fiber.Map{
		"data":       helpers.Slice(items, p),
		"pagination": helpers.Meta(p, len(items)),
	})
}

// 🟢 CREATE (public application or admin entry): status defaults to pending
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	st := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &st)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Student created", fiber.Map{
		"student_id": id,
		"student":    st,
	})
}

func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.Store.Update(c.UserContext(), id, body.Patch()); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helpers.Success(c, "Student updated", nil)
}

func (ctrl *StudentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	var body dto.UpdateStudentStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.Store.Update(c.UserContext(), id, map[string]any{"student_status": body.Status}); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update student status")
	}
	return helpers.Success(c, "Student status updated", nil)
}

func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helpers.Success(c, "Student deleted", nil)
}

func (ctrl *StudentController) ExportCSV(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	header := []string{"id", "name", "email", "phone", "university", "major", "sector", "status", "created_at"}
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, []string{
			s.StudentID.String(),
			s.StudentName,
			s.StudentEmail,
			s.StudentPhone,
			s.StudentUniversity,
			s.StudentMajor,
			s.StudentSector,
			s.StudentStatus,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return helpers.SendCSV(c, "students.csv", header, rows)
}
