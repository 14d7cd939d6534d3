package dto

// CredentialResponse contenido parseado de un archivo de credenciales.
type CredentialResponse struct {
	DateCreated string `json:"date_created"`
	Employee    string `json:"employee"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}
