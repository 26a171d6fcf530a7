// component/tower.go
package component

import "go-wave-defense/internal/defs"

type Tower struct {
	Type       defs.TowerType // Тип из закрытого набора
	Cost       int            // Цена на момент постройки (для возврата)
	Size       float64        // Диаметр "подошвы" башни
	IsSelected bool           // Выбрана ли башня (только для UI)
}
