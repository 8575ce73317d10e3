package entity

// Brand marca de perfume, simplificada a nombre y estado.
// Se gestiona inline desde productos con find-or-create (case-insensitive).
type Brand struct {
	ID     int
	Name   string
	Active bool
}

// Line línea/familia olfativa de una marca.
type Line struct {
	ID     int
	Name   string
	Active bool
}

// VolumeOption presentación en mililitros; deduplicada por valor exacto.
type VolumeOption struct {
	ID     int
	Value  int
	Active bool
}
