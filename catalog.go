package teologia

// catalog is the compiled-in list of sources. It is never modified;
// Catalog hands out copies.
var catalog = []Source{
	{
		ID:       "tomas-summa",
		Author:   "Santo Tomás de Aquino",
		Category: CategoryDoctor,
		Work:     "Summa Theologiae",
		Section:  "I, q.1",
		Topics:   []string{"fe y razón", "sacra doctrina"},
		URL:      "https://www.newadvent.org/summa/",
		Quote:    "La gracia no destruye la naturaleza, sino que la perfecciona.",
	},
	{
		ID:       "agustin-conf",
		Author:   "San Agustín de Hipona",
		Category: CategoryDoctor,
		Work:     "Confesiones",
		Section:  "I,1",
		Topics:   []string{"inquietud del corazón", "conversión"},
		URL:      "https://www.augustinus.it/spagnolo/confesiones/index2.htm",
		Quote:    "Nos hiciste, Señor, para ti y nuestro corazón está inquieto hasta que descanse en ti.",
	},
	{
		ID:       "bonaventura-itinerarium",
		Author:   "San Buenaventura",
		Category: CategoryDoctor,
		Work:     "Itinerarium mentis in Deum",
		Section:  "I–II",
		Topics:   []string{"contemplación", "ascenso"},
		URL:      "https://sourcebooks.fordham.edu/basis/bonaventura-itinerarium.asp",
		Quote:    "El alma asciende a Dios a través de sus huellas en la creación y la iluminación interior.",
	},
	{
		ID:       "teresa-castillo",
		Author:   "Santa Teresa de Ávila",
		Category: CategoryDoctor,
		Work:     "Libro de la vida / Castillo interior",
		Section:  "Vida 8,5",
		Topics:   []string{"oración", "amistad con Dios"},
		URL:      "https://www.cervantesvirtual.com/obra-visor/libro-de-la-vida--0/html/",
		Quote:    "La oración no es otra cosa sino tratar de amistad, estando muchas veces tratando a solas con quien sabemos nos ama.",
	},
	{
		ID:       "juan-cruz-subida",
		Author:   "San Juan de la Cruz",
		Category: CategoryDoctor,
		Work:     "Subida / Noche / Dichos",
		Topics:   []string{"desapropiación", "mística"},
		URL:      "https://www.mercaba.org/SANJUAN/san_juan_de_la_cruz.htm",
		Quote:    "Para venir a poseerlo todo, no quieras poseer algo en nada.",
	},
	{
		ID:       "gregorio-magno",
		Author:   "San Gregorio Magno",
		Category: CategoryDoctor,
		Work:     "Moralia in Iob",
		Topics:   []string{"escritura", "sabiduría"},
		URL:      "https://www.documentacatholicaomnia.eu/04z/z_0540-0604__Gregorius_I_Magnus__Moralia_In_Iob__MLT.pdf.html",
		Quote:    "Las Escrituras crecen con quien las lee.",
	},
	{
		ID:       "anselmo-fides",
		Author:   "San Anselmo de Canterbury",
		Category: CategoryDoctor,
		Work:     "Proslogion",
		Topics:   []string{"fe y entendimiento", "argumento"},
		URL:      "https://plato.stanford.edu/entries/anselm/",
		Quote:    "No busco comprender para creer, sino que creo para comprender.",
	},
	{
		ID:       "ratzinger-intro",
		Author:   "Joseph Ratzinger (Benedicto XVI)",
		Category: CategoryTheologian,
		Work:     "Introducción al Cristianismo / Homilías",
		Topics:   []string{"fe y razón", "Cristo"},
		URL:      "https://www.vatican.va/content/benedict-xvi/es/homilies.index.html",
		Quote:    "La fe es encuentro con una Persona viva: Jesucristo.",
	},
	{
		ID:       "balthasar-gloria",
		Author:   "Hans Urs von Balthasar",
		Category: CategoryTheologian,
		Work:     "Gloria",
		Topics:   []string{"belleza", "revelación"},
		URL:      "https://www.communio-icr.com/",
		Quote:    "Sólo el amor es digno de fe.",
	},
	{
		ID:       "rahner",
		Author:   "Karl Rahner",
		Category: CategoryTheologian,
		Work:     "Escritos teológicos",
		Topics:   []string{"mística cotidiana", "trascendental"},
		URL:      "https://www.herdereditorial.com/blogs/revista-rahner",
		Quote:    "El cristiano del futuro será un místico o no será.",
	},
	{
		ID:       "aristoteles-met",
		Author:   "Aristóteles",
		Category: CategoryPhilosopher,
		Work:     "Metafísica / Física",
		Topics:   []string{"acto y potencia", "causas"},
		URL:      "https://www.perseus.tufts.edu/hopper/collection?collection=Perseus%3Acollection%3AGreco-Roman",
		Quote:    "El acto es anterior por naturaleza a la potencia.",
	},
	{
		ID:       "platon-republica",
		Author:   "Platón",
		Category: CategoryPhilosopher,
		Work:     "República",
		Topics:   []string{"bien", "contemplación"},
		URL:      "http://classics.mit.edu/Plato/republic.html",
		Quote:    "El Bien es causa de lo cognoscible y de la verdad.",
	},
	{
		ID:       "boecio",
		Author:   "Boecio",
		Category: CategoryPhilosopher,
		Work:     "Consolación de la Filosofía",
		Topics:   []string{"providencia", "fortuna"},
		URL:      "https://www.gutenberg.org/ebooks/14328",
		Quote:    "La providencia es el plan divino que lo abarca todo.",
	},
}

// Catalog returns a copy of the compiled-in sources in catalog order.
// Callers may modify the returned slice freely.
func Catalog() []Source {
	out := make([]Source, len(catalog))
	for i := range catalog {
		out[i] = cloneSource(catalog[i])
	}
	return out
}
