package defs

import "math"

// WaveDefinition описывает одну волну: тип мобов, их количество и время старта.
// Волна без типа — терминальная: после неё мобы больше не появляются.
type WaveDefinition struct {
	MobType   string  `yaml:"type"`
	Count     int     `yaml:"count"`
	StartTime float64 `yaml:"start_time"` // секунды от начала игры
}

// IsTerminal сообщает, является ли волна терминальной.
func (w WaveDefinition) IsTerminal() bool {
	return w.MobType == ""
}

// TerminalWave — волна-заглушка, которая никогда не начинается.
func TerminalWave() WaveDefinition {
	return WaveDefinition{StartTime: math.Inf(1)}
}
