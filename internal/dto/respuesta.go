package dto

// Respuesta is the envelope every action answers with.
type Respuesta struct {
	Resultado bool        `json:"Resultado"`
	Mensaje   string      `json:"Mensaje"`
	Data      interface{} `json:"Data"`
	Errores   []string    `json:"Errores"`
}

// Exito builds a successful envelope.
func Exito(mensaje string, data interface{}) Respuesta {
	return Respuesta{
		Resultado: true,
		Mensaje:   mensaje,
		Data:      data,
		Errores:   []string{},
	}
}

// Fallo builds a failed envelope. When no errores are given the message is
// repeated as the single entry.
func Fallo(mensaje string, errores ...string) Respuesta {
	if len(errores) == 0 {
		errores = []string{mensaje}
	}
	return Respuesta{
		Resultado: false,
		Mensaje:   mensaje,
		Errores:   errores,
	}
}

// Pagina is the Data payload of list actions.
type Pagina struct {
	Registros    interface{} `json:"Registros"`
	Pagina       int         `json:"Pagina"`
	Tamano       int         `json:"Tamano"`
	Total        int64       `json:"Total"`
	TotalPaginas int         `json:"TotalPaginas"`
}

// NuevaPagina wraps rows with their paging metadata.
func NuevaPagina(registros interface{}, pagina, tamano int, total int64) Pagina {
	totalPaginas := 0
	if tamano > 0 {
		totalPaginas = int(total) / tamano
		if int(total)%tamano > 0 {
			totalPaginas++
		}
	}
	return Pagina{
		Registros:    registros,
		Pagina:       pagina,
		Tamano:       tamano,
		Total:        total,
		TotalPaginas: totalPaginas,
	}
}
