package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrEmployeeNotFound    = errors.New("empleado no encontrado")
	ErrAccountNotFound     = errors.New("cuenta no encontrada")
	ErrTaskNotFound        = errors.New("tarea no encontrada")
	ErrCredentialNotFound  = errors.New("archivo de credenciales no encontrado")
	ErrEmployeeExists      = errors.New("el empleado ya existe")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnknownPosition     = errors.New("posición desconocida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrAccountDeactivated  = errors.New("cuenta desactivada")
	ErrWrongPassword       = errors.New("contraseña incorrecta")
	ErrTaskAlreadyComplete = errors.New("la tarea ya está completada")
)
