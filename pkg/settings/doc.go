// Package settings holds the user's per-category unit preferences and
// the stores that persist them.
//
// A [Settings] value names one preferred display unit per measurement
// category plus a currency code and timezone designator. Empty fields
// mean "no preference"; [Settings.WithDefaults] fills them from the
// built-in metric/Celsius/UTC/USD set before use.
//
// Three [Store] implementations are provided: [Memory] for tests and
// unconfigured setups, [File] over a YAML file with fsnotify-based
// change notification ([File.Watch]), and [RedisStore] for shared
// deployments. All report [ErrNotFound] before the first save so the
// caller can decide to fall back to [Defaults].
package settings
