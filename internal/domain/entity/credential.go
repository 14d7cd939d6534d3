package entity

// Credential contenido parseado de un archivo del side-store de
// credenciales. Es un artefacto de conveniencia NO autoritativo: la
// fuente de verdad de la cuenta es siempre la fila en la base de datos.
type Credential struct {
	DateCreated string // tal cual se escribió en el archivo
	Employee    string // nombre para mostrar
	Username    string
	Password    string // texto plano; el mecanismo es deliberadamente inseguro
}
