package staff_login

// Page данные страницы входа. Пароль в форму не возвращается.
type Page struct {
	Email string
	Error string
}
