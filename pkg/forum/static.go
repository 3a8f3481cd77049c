package forum

type TechItem struct {
	Name        string
	Description string
}

type ContactLink struct {
	Label string
	Text  string
	Href  string
}

type ContactInfo struct {
	Pitch string
	Name  string
	Links []ContactLink
}

// Content of the two informational views. It never changes at runtime.
var (
	TechStack = []TechItem{
		{"React", "Biblioteca de JavaScript para construir la interfaz de usuario (el front-end)."},
		{"Node.js", "Entorno de ejecución para construir el servidor (el back-end)."},
		{"Express.js", "Framework de Node.js para gestionar las rutas y la API del back-end."},
		{"SQLite", "Base de datos ligera y autónoma para almacenar los posts. Ideal para proyectos pequeños."},
		{"Sequelize", "ORM (Object-Relational Mapper) que facilita la interacción con la base de datos."},
		{"Render", "Plataforma en la nube para desplegar y alojar la aplicación y el servidor de forma gratuita."},
	}

	Contact = ContactInfo{
		Pitch: "Estoy disponible para proyectos y oportunidades de trabajo.",
		Name:  "Leandro Maciel",
		Links: []ContactLink{
			{"Correo Electrónico", "leandrotvr@gmail.com", "mailto:leandrotvr@gmail.com"},
			{"GitHub", "github.com/Leandrotvr", "https://github.com/Leandrotvr"},
			{"LinkedIn", "linkedin.com/in/leandromaciel581", "https://www.linkedin.com/in/leandromaciel581"},
			{"Otro Proyecto", "To Do List React App", "#"},
		},
	}
)
