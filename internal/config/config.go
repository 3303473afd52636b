// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 960
	TileSize     = 64
	FPS          = 60

	MaxDeltaTime  = 0.1 // кадры длиннее пропускаются целиком
	StartingMoney = 1400
	StartingLives = 20
	SpawnDelay    = 0.3 // секунд между мобами одной волны
	MaxPaths      = 256 // 0 — перебирать все простые пути

	// Мобы
	MobFriction        = 0.9
	MobSlowRadius      = 100.0
	MobMaxForce        = 1.0
	MobSpawnJitter     = 1.0 // разброс по Y при появлении, пиксели
	SeparationRadius   = 40.0
	SeparationMinDist  = 0.001
	SeparationMaxForce = 0.2
	WanderDistance     = 40.0
	WanderRadius       = 16.0
	WanderMaxJitter    = 0.4
	HealthBarWidth     = 40
	HealthBarHeight    = 6

	// Стрелки
	LeadFactor      = 30.0 // упреждение: позиция цели + скорость·LeadFactor
	MuzzleOffset    = 22.0
	TwinSpread      = 6.0 // половина расстояния между стволами спарки
	MuzzleFlashTime = 0.06
	ShooterBase     = 64.0 // сторона занимаемого квадрата
	TurretTurnRate  = 20.0 // доля поворота ствола в секунду

	// Снаряды
	BulletSpeed      = 200.0
	BulletFriction   = 0.99
	BulletHitBox     = 14.0
	BulletMinSpeed   = 1.0 // пикселей за тик
	RocketSpeed      = 60.0
	RocketMaxSpeed   = 10.0
	RocketMaxForce   = 1.0
	RocketFriction   = 0.92
	RocketSlowRadius = 30.0
	RocketHitBox     = 12.0
)

var (
	BackgroundColor = color.RGBA{34, 40, 30, 255}
	WallColor       = color.RGBA{90, 90, 100, 255}
	RoadColor       = color.RGBA{120, 100, 70, 255}
	NodeColor       = color.RGBA{80, 160, 220, 160}
	PathColor       = color.RGBA{255, 255, 255, 120}
	MobColor        = color.RGBA{200, 60, 60, 255}
	ShooterColor    = color.RGBA{100, 200, 100, 255}
	BulletColor     = color.RGBA{255, 230, 120, 255}
	RocketColor     = color.RGBA{255, 140, 40, 255}
	FlashColor      = color.RGBA{255, 255, 200, 255}
	RadiusColor     = color.RGBA{20, 20, 20, 90}
	HitBoxColor     = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthHigh      = color.RGBA{0, 255, 0, 255}
	HealthMid       = color.RGBA{255, 255, 0, 255}
	HealthLow       = color.RGBA{255, 0, 0, 255}
)
