package typemap

// The presets are the Map instantiations for the common capability
// bundles. They are aliases: a preset adds no behavior, only a name that
// carries the intended bounds and keeps call sites and error messages
// readable.

// TypeMap is the default preset. Any value type is admitted; write through
// Insert and EntryOf.
type TypeMap = Map[AnyBox]

// SendMap is a TypeMap meant to be handed from one goroutine to another.
// Go places no type level bound on moving values between goroutines, so
// SendMap admits the same values as TypeMap; the alias documents intent.
type SendMap = TypeMap

// SyncMap is a TypeMap meant to be read from several goroutines at once,
// with no concurrent writer. Concurrent reads of Go values are safe, so no
// extra bound applies; the alias documents intent.
type SyncMap = TypeMap

// ShareMap combines the uses of SendMap and SyncMap.
type ShareMap = TypeMap

// CloneMap admits values that can duplicate themselves, see Cloner. Write
// through CloneInsert and CloneEntryOf. A CloneMap can itself be
// duplicated with Clone.
type CloneMap = Map[CloneBox]

// ShareCloneMap is a CloneMap meant to be shared across goroutines, see
// ShareMap.
type ShareCloneMap = CloneMap

// StringerMap admits values with a human readable rendering, see
// fmt.Stringer. Write through StringerInsert and StringerEntryOf. A
// StringerMap renders with String.
type StringerMap = Map[StringerBox]

// ShareStringerMap is a StringerMap meant to be shared across goroutines,
// see ShareMap.
type ShareStringerMap = StringerMap
