package credentials

import "github.com/tu-usuario/staff-api/internal/domain/entity"

// Store es el puerto del side-store de credenciales generadas: un
// directorio de archivos de texto plano, de conveniencia y NO
// autoritativo. Persist y Purge no devuelven error a propósito: el
// contrato del sistema es que un fallo del side-store jamás afecta la
// mutación autoritativa de la cuenta; la implementación loggea y sigue.
type Store interface {
	// Persist escribe un archivo con las credenciales recién generadas.
	Persist(employeeName, username, plainPassword string)
	// Purge borra todos los archivos cuyo nombre empieza por "username_".
	Purge(username string)
	// Lookup devuelve el archivo más reciente cuya línea "Username:"
	// contiene el username (case-insensitive); (nil, nil) si no hay.
	Lookup(username string) (*entity.Credential, error)
}
