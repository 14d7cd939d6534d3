package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/application/task"
	"github.com/tu-usuario/staff-api/internal/domain"
)

// TaskHandler asignación y ciclo de vida de tareas.
type TaskHandler struct {
	uc *task.UseCase
}

// NewTaskHandler construye el handler de tareas.
func NewTaskHandler(uc *task.UseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Assign godoc
// @Summary      Asignar una tarea (quien asigna sale del token)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AssignTaskRequest  true  "task_name, assigned_to_id"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TaskName == "" || in.AssignedToID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "task_name y assigned_to_id son requeridos"})
	}
	// employeeId del token, NO userId: las asignaciones referencian empleados.
	assignedByID := GetEmployeeID(c)
	if assignedByID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EMPLOYEE", Message: "el token no incluye employeeId"})
	}
	et, err := h.uc.Assign(c.Context(), assignedByID, in)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ASSIGNEE_NOT_FOUND", Message: "el empleado destino no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    et,
		"message": "tarea asignada",
	})
}

// AssignedToMe godoc
// @Summary      Bandeja de tareas pendientes del empleado autenticado
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TaskAssignedToResponse
// @Router       /api/tasks/assigned-to-me [get]
func (h *TaskHandler) AssignedToMe(c *fiber.Ctx) error {
	employeeID := GetEmployeeID(c)
	if employeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EMPLOYEE", Message: "el token no incluye employeeId"})
	}
	out, err := h.uc.ListFor(employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AssignedByMe godoc
// @Summary      Tareas delegadas por el empleado autenticado
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TaskAssignedByResponse
// @Router       /api/tasks/assigned-by-me [get]
func (h *TaskHandler) AssignedByMe(c *fiber.Ctx) error {
	employeeID := GetEmployeeID(c)
	if employeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EMPLOYEE", Message: "el token no incluye employeeId"})
	}
	out, err := h.uc.ListBy(employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Start godoc
// @Summary      Empezar a trabajar en una tarea
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        taskId  path  string  true  "task id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{taskId}/start [put]
func (h *TaskHandler) Start(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Start, "tarea iniciada")
}

// Complete godoc
// @Summary      Completar una tarea
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        taskId  path  string  true  "task id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{taskId}/complete [put]
func (h *TaskHandler) Complete(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Complete, "tarea completada")
}

func (h *TaskHandler) transition(c *fiber.Ctx, fn func(string) error, okMsg string) error {
	if err := fn(c.Params("taskId")); err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
		case errors.Is(err, domain.ErrTaskAlreadyComplete):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TASK_COMPLETED", Message: "la tarea ya está completada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: okMsg})
}
