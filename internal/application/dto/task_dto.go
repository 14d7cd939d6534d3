package dto

// AssignTaskRequest entrada para asignar una tarea. Quien asigna sale
// del claim employeeId del token, no del cuerpo.
type AssignTaskRequest struct {
	TaskName     string `json:"task_name" validate:"required,min=1,max=200"`
	AssignedToID string `json:"assigned_to_id" validate:"required,uuid"`
}

// TaskAssignedToResponse tarea en la bandeja de un empleado.
type TaskAssignedToResponse struct {
	TaskID     string `json:"task_id"`
	TaskName   string `json:"task_name"`
	Status     string `json:"status"`
	AssignedBy string `json:"assigned_by"`
}

// TaskAssignedByResponse tarea delegada por un manager.
type TaskAssignedByResponse struct {
	TaskID     string `json:"task_id"`
	TaskName   string `json:"task_name"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to"`
}
