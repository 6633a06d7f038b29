// internal/config/config.go
package config

import "image/color"

// Симуляция
const (
	WorldScale           = 10.0 // мировых единиц в одной единице карты
	ChainRadius          = 2.4  // радиус цепной молнии, мировые единицы
	MaxSlowFraction      = 0.8  // скорость не падает ниже 20% от базовой
	FallbackAttackPeriod = 1.0  // период атаки при неположительной скорострельности
	DefaultTickDelta     = 0.1
	MaxTicksPerRun       = 200000
)

// Окружение
const (
	EnvDataDir  = "HOMELAND_DATA_DIR"
	EnvMapID    = "HOMELAND_MAP"
	EnvLogLevel = "HOMELAND_LOG_LEVEL"

	DefaultDataDir  = "data"
	DefaultMapID    = "map_01_river_bend"
	DefaultLogLevel = "info"
)

// Вьюер
const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MapMargin    = 60.0
	MaxDeltaTime = 0.06

	SlotRadius    = 14.0
	TowerRadius   = 11.0
	EnemyRadius   = 8.0
	HPBarWidth    = 20.0
	HPBarHeight   = 3.0
	PathWidth     = 18.0
	StrokeWidth   = 2.0
	HUDLineHeight = 16
	HUDOffsetX    = 12
	HUDOffsetY    = 20
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WaterColor      = color.RGBA{40, 90, 140, 255}
	SlotColor       = color.RGBA{150, 150, 150, 200}
	SlotHoverColor  = color.RGBA{240, 240, 240, 255}
	EnemyColor      = color.RGBA{200, 170, 120, 255}
	BurnTint        = color.RGBA{255, 110, 40, 255}
	SlowTint        = color.RGBA{140, 220, 255, 255}
	HPBackColor     = color.RGBA{60, 0, 0, 255}
	HPFillColor     = color.RGBA{50, 205, 50, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}

	// Цвет башни по стихии: none, fire, wind, lightning
	TowerColors = []color.RGBA{
		{200, 200, 200, 255},
		{255, 80, 40, 255},
		{120, 230, 160, 255},
		{180, 120, 255, 255},
	}

	SpeedMultipliers = []float64{1, 2, 4}
)

// Цвета индикатора фазы
var (
	BuildPhaseColor  = color.RGBA{80, 200, 120, 255}
	WavePhaseColor   = color.RGBA{220, 80, 60, 255}
	ResultPhaseColor = color.RGBA{240, 200, 60, 255}
	PausedPhaseColor = color.RGBA{120, 120, 120, 255}

	IndicatorRadius  = float32(12)
	IndicatorOffsetX = 30
)
