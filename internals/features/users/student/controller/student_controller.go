package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentDTO "santhome_backend/internals/features/users/student/dto"
	studentModel "santhome_backend/internals/features/users/student/model"
	studentService "santhome_backend/internals/features/users/student/service"
	helper "santhome_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /user?admissionNumber=
func (h *StudentController) GetByAdmission(c *fiber.Ctx) error {
	admissionNo := c.Query("admissionNumber")
	if admissionNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Admission number is required")
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_admission_number = ?", admissionNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", studentDTO.NewStudentResponse(&student))
}

// GET /all
func (h *StudentController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 200, 500)

	var rows []studentModel.StudentModel
	q := h.DB.Order("student_admission_number ASC")
	if paging.Limit > 0 {
		q = q.Limit(paging.Limit).Offset(paging.Offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", studentDTO.NewStudentResponses(rows))
}

// GET /sem-list
func (h *StudentController) SemesterList(c *fiber.Ctx) error {
	var sems []string
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Distinct("student_semester").
		Where("student_semester <> ''").
		Order("student_semester ASC").
		Pluck("student_semester", &sems).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", sems)
}

// GET /by-sem?sem=
func (h *StudentController) GetBySemester(c *fiber.Ctx) error {
	sem := c.Query("sem")
	if sem == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Semester is required")
	}

	var rows []studentModel.StudentModel
	if err := h.DB.
		Where("student_semester = ?", sem).
		Order("student_admission_number ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", studentDTO.NewStudentResponses(rows))
}

// GET /rooms
func (h *StudentController) Rooms(c *fiber.Ctx) error {
	var rooms []string
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Distinct("student_room_number").
		Where("student_room_number <> ''").
		Order("student_room_number ASC").
		Pluck("student_room_number", &rooms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", rooms)
}

// GET /studentsByRoom?roomNo=
func (h *StudentController) GetByRoom(c *fiber.Ctx) error {
	roomNo := c.Query("roomNo")
	if roomNo == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Room number is required")
	}

	var rows []studentModel.StudentModel
	if err := h.DB.
		Where("student_room_number = ?", roomNo).
		Order("student_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "OK", studentDTO.NewStudentResponses(rows))
}

// GET /count
func (h *StudentController) Counts(c *fiber.Ctx) error {
	var studentCount int64
	if err := h.DB.Model(&studentModel.StudentModel{}).Count(&studentCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	var roomCount int64
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_room_number <> ''").
		Distinct("student_room_number").
		Count(&roomCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"students": studentCount,
		"rooms":    roomCount,
	})
}

// GET /users/map
// admission number -> name, for report screens that resolve names client side.
func (h *StudentController) Map(c *fiber.Ctx) error {
	var rows []studentModel.StudentModel
	if err := h.DB.Select("student_admission_number", "student_name").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.StudentAdmissionNumber] = r.StudentName
	}

	return helper.Success(c, "OK", out)
}

// PUT /update/:admissionNo
func (h *StudentController) Update(c *fiber.Ctx) error {
	admissionNo := c.Params("admissionNo")

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.Empty() {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_admission_number = ?", admissionNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	req.ApplyToModel(&student)
	if err := h.DB.Save(&student).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.Success(c, "Student updated successfully", studentDTO.NewStudentResponse(&student))
}

// DELETE /delete/:admissionNo
func (h *StudentController) Delete(c *fiber.Ctx) error {
	admissionNo := c.Params("admissionNo")

	res := h.DB.Delete(&studentModel.StudentModel{}, "student_admission_number = ?", admissionNo)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.Success(c, "Student deleted successfully", nil)
}

// PUT /bulk-sem
// Promotes a batch to the next semester in one statement.
func (h *StudentController) BulkSemesterUpdate(c *fiber.Ctx) error {
	var req studentDTO.BulkSemesterUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_admission_number IN ?", req.AdmissionNumbers).
		Update("student_semester", req.Semester)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"message": "Semester updated",
		"updated": res.RowsAffected,
	})
}

// POST /profile-photo/:admissionNo
func (h *StudentController) UploadProfilePhoto(c *fiber.Ctx) error {
	admissionNo := c.Params("admissionNo")

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Photo file is required")
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_admission_number = ?", admissionNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	url, err := studentService.SaveProfilePhoto(admissionNo, fileHeader)
	if err != nil {
		log.Println("[ERROR] profile photo:", err)
		return helper.Error(c, fiber.StatusBadRequest, "Could not process photo")
	}

	if student.StudentProfilePhotoURL != nil {
		if err := studentService.RemoveProfilePhoto(*student.StudentProfilePhotoURL); err != nil {
			log.Println("[WARN] remove old photo:", err)
		}
	}

	if err := h.DB.Model(&student).Update("student_profile_photo_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.SuccessMap(c, fiber.StatusOK, fiber.Map{
		"message":      "Profile photo updated",
		"profilePhoto": url,
	})
}
