// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS. Ноль означает "нет сущности".
// Идентификаторы выдаются монотонно, поэтому порядок ID совпадает с порядком создания.
type EntityID uint64

// None — пустой идентификатор (например, башня без цели).
const None EntityID = 0
