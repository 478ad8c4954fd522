package seed

// data.go — static fixture catalog.
// Reference data (paises, buques) is seeded in every environment; usuarios de
// demo, recaladas and atenciones only in development.

type paisSeed struct {
	Nombre string
	Codigo string
}

type buqueSeed struct {
	Codigo     string
	Nombre     string
	Naviera    string
	Capacidad  int
	PaisCodigo string
}

type usuarioSeed struct {
	Email    string
	Nombre   string
	Apellido string
	Rol      string
	Telefono string
	Zona     string
	Idiomas  string
}

// turnoPlanSeed declares the target state of one numbered slot. CheckInMin /
// CheckOutMin are offsets in minutes from the window start; nil means unset.
type turnoPlanSeed struct {
	Numero      int
	Estado      string
	GuiaEmail   string // resolved to the Guia profile id during the run
	CheckInMin  *int
	CheckOutMin *int
	Motivo      *string
}

// recaladaSeed schedules a port call relative to today's UTC-5 civil date.
// Clave is only a fixture handle for atencionSeed references; the stored
// Codigo is generated at seed time.
type recaladaSeed struct {
	Clave           string
	BuqueNombre     string
	PaisCodigo      string
	SupervisorEmail string
	ArriboDias      int // civil days from today
	EstadiaHoras    int
	Estado          string
	ArriboRealMin   *int // offset from scheduled arrival, ARRIVED/DEPARTED only
	ZarpeRealMin    *int
	MotivoCancel    *string
}

type atencionSeed struct {
	RecaladaClave   string
	SupervisorEmail string
	InicioMin       int // offset in minutes from the recalada's scheduled arrival
	DuracionMin     int
	TurnosTotal     int
	Estado          string
	Plan            []turnoPlanSeed
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

var paisesSeed = []paisSeed{
	{Nombre: "Colombia", Codigo: "CO"},
	{Nombre: "Estados Unidos", Codigo: "US"},
	{Nombre: "Panama", Codigo: "PA"},
	{Nombre: "Bahamas", Codigo: "BS"},
	{Nombre: "Reino Unido", Codigo: "GB"},
	{Nombre: "Noruega", Codigo: "NO"},
	{Nombre: "Italia", Codigo: "IT"},
	{Nombre: "Alemania", Codigo: "DE"},
}

var buquesSeed = []buqueSeed{
	{Codigo: "msc-poe", Nombre: "MSC Poesia", Naviera: "MSC Cruceros", Capacidad: 3013, PaisCodigo: "PA"},
	{Codigo: "ncl-esc", Nombre: "Norwegian Escape", Naviera: "Norwegian Cruise Line", Capacidad: 4266, PaisCodigo: "BS"},
	{Codigo: "cun-vis", Nombre: "Cunard Queen Victoria", Naviera: "Cunard Line", Capacidad: 2061, PaisCodigo: "GB"},
	{Codigo: "aida-lu", Nombre: "AIDAluna", Naviera: "AIDA Cruises", Capacidad: 2100, PaisCodigo: "IT"},
	{Codigo: "hur-mid", Nombre: "Maud", Naviera: "Hurtigruten", Capacidad: 532, PaisCodigo: "NO"},
}

// Development demo accounts. The shared password comes from SEED_USER_PASSWORD.
var usuariosSeed = []usuarioSeed{
	{Email: "supervisor1@gestionguias.com", Nombre: "Carolina", Apellido: "Mendez", Rol: "SUPERVISOR", Telefono: "3001112233", Zona: "Muelle Norte"},
	{Email: "supervisor2@gestionguias.com", Nombre: "Jorge", Apellido: "Patino", Rol: "SUPERVISOR", Telefono: "3004445566", Zona: "Muelle Sur"},
	{Email: "guia1@gestionguias.com", Nombre: "Laura", Apellido: "Rios", Rol: "GUIA", Telefono: "3017778899", Idiomas: "es,en"},
	{Email: "guia2@gestionguias.com", Nombre: "Andres", Apellido: "Soto", Rol: "GUIA", Telefono: "3012223344", Idiomas: "es,en,fr"},
	{Email: "guia3@gestionguias.com", Nombre: "Paula", Apellido: "Cano", Rol: "GUIA", Telefono: "3015556677", Idiomas: "es,de"},
	{Email: "guia4@gestionguias.com", Nombre: "Miguel", Apellido: "Vega", Rol: "GUIA", Telefono: "3018889900", Idiomas: "es,en,it"},
}

var recaladasSeed = []recaladaSeed{
	{
		Clave: "ayer-zarpada", BuqueNombre: "MSC Poesia", PaisCodigo: "PA",
		SupervisorEmail: "supervisor1@gestionguias.com",
		ArriboDias:      -1, EstadiaHoras: 12, Estado: "DEPARTED",
		ArriboRealMin: intPtr(20), ZarpeRealMin: intPtr(-15),
	},
	{
		Clave: "hoy-arribada", BuqueNombre: "Norwegian Escape", PaisCodigo: "BS",
		SupervisorEmail: "supervisor1@gestionguias.com",
		ArriboDias:      0, EstadiaHoras: 10, Estado: "ARRIVED",
		ArriboRealMin: intPtr(5),
	},
	{
		Clave: "manana-programada", BuqueNombre: "Cunard Queen Victoria", PaisCodigo: "GB",
		SupervisorEmail: "supervisor2@gestionguias.com",
		ArriboDias:      1, EstadiaHoras: 9, Estado: "SCHEDULED",
	},
	{
		Clave: "cancelada", BuqueNombre: "AIDAluna", PaisCodigo: "IT",
		SupervisorEmail: "supervisor2@gestionguias.com",
		ArriboDias:      2, EstadiaHoras: 8, Estado: "CANCELED",
		MotivoCancel: strPtr("Cambio de itinerario por clima"),
	},
}

var atencionesSeed = []atencionSeed{
	{
		RecaladaClave:   "ayer-zarpada",
		SupervisorEmail: "supervisor1@gestionguias.com",
		InicioMin:       60, DuracionMin: 240, TurnosTotal: 4, Estado: "CLOSED",
		Plan: []turnoPlanSeed{
			{Numero: 1, Estado: "COMPLETED", GuiaEmail: "guia1@gestionguias.com", CheckInMin: intPtr(0), CheckOutMin: intPtr(240)},
			{Numero: 2, Estado: "COMPLETED", GuiaEmail: "guia2@gestionguias.com", CheckInMin: intPtr(10), CheckOutMin: intPtr(245)},
			{Numero: 3, Estado: "NO_SHOW", GuiaEmail: "guia3@gestionguias.com"},
			{Numero: 4, Estado: "CANCELED", Motivo: strPtr("Grupo reducido de visitantes")},
		},
	},
	{
		RecaladaClave:   "hoy-arribada",
		SupervisorEmail: "supervisor1@gestionguias.com",
		InicioMin:       90, DuracionMin: 180, TurnosTotal: 6, Estado: "OPEN",
		Plan: []turnoPlanSeed{
			{Numero: 1, Estado: "IN_PROGRESS", GuiaEmail: "guia1@gestionguias.com", CheckInMin: intPtr(0)},
			{Numero: 2, Estado: "ASSIGNED", GuiaEmail: "guia4@gestionguias.com"},
			// 3..6 stay AVAILABLE
		},
	},
	{
		RecaladaClave:   "manana-programada",
		SupervisorEmail: "supervisor2@gestionguias.com",
		InicioMin:       120, DuracionMin: 180, TurnosTotal: 3, Estado: "OPEN",
	},
}
