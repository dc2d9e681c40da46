package page

const (
	MenuTitle     = "Nuestra Carta"
	SpecialsTitle = "Nuestras Especialidades"
)

// Content is the text of a plain section. Paragraphs are word-wrapped to the
// card width. With a non-zero Step each paragraph starts Step logical pixels
// below the previous one; otherwise they flow one after another.
type Content struct {
	Title      string
	TitleGap   int
	Paragraphs []string
	Step       int
}

var contents = map[Section]Content{
	SectionHome: {
		Title:    "Bienvenido a la Cantina",
		TitleGap: 40,
		Paragraphs: []string{
			"Clásico bodegón porteño en La Paternal. Desde hace casi setenta años " +
				"servimos cocina de familia, platos abundantes y la misma mesa larga " +
				"donde se juntan vecinos, hinchas y visitantes de todo el mundo. " +
				"Pase, siéntese y déjese atender como en casa.",
		},
	},
	SectionHistory: {
		Title:    "Historia",
		TitleGap: 36,
		Paragraphs: []string{
			"Desde 1956, Cantina Chichilo es un ícono de barrio. Don Chichilo abrió " +
				"el salón en la esquina de Camarones y Terrero con cuatro mesas y una " +
				"cocina a leña. Con los años la cantina creció junto al club y al " +
				"barrio, y hoy la atienden sus nietos, que siguen cocinando las mismas " +
				"recetas de la casa con los productos del mercado de cada día.",
		},
	},
	SectionHours: {
		Title:    "Horarios",
		TitleGap: 50,
		Step:     40,
		Paragraphs: []string{
			"-Lunes de 20:30 a 00:00 hs",
			"-Martes de 20:30 a 00:00 hs",
			"-Miercoles de 20:30 a 00:00 hs",
			"-Jueves de 20:30 a 00:00 hs",
			"-Viernes de 20:30 a 00:00 hs",
			"-Sábados de 12:30 a 14:30 hs",
			"-Domingos de 12:30 a 14:30 hs",
		},
	},
	SectionContact: {
		Title:    "Contacto",
		TitleGap: 50,
		Step:     30,
		Paragraphs: []string{
			"Dirección: Camarones 1901, Esquina Terrero 2006",
			"Capital Federal",
			"Reservas: 011-4581-1984 / 011-4584-1263",
			"Email: cantinachichilo@cantinachichilo.com.ar",
			"Email: chichilo3554@hotmail.com",
		},
	},
}

// ContentFor returns the text of a plain section. Menu has no plain content
// and reports false.
func ContentFor(s Section) (Content, bool) {
	c, ok := contents[s]
	return c, ok
}
