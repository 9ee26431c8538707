package entity

// User representa una cuenta de administración.
// Password guarda el valor tal cual lo define el esquema configurado:
// texto plano (por defecto) o hash bcrypt.
type User struct {
	Username string
	Password string
}
