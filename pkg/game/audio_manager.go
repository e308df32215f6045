package game

import (
	"encoding/binary"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 48000

// 吱吱声参数：频率从 squeakStartHz 线性滑到 squeakEndHz
const (
	squeakDuration = 0.09
	squeakStartHz  = 1800.0
	squeakEndHz    = 3200.0
)

// AudioManager 音频管理器
//
// 桌宠只有一个合成的吱吱声，双击和换皮肤时播放。
// 音量和静音从 SettingsManager 读取。
// audioContext 为 nil 时静默运行（降级模式，如无音频设备）。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	squeak          []byte
}

// NewAudioManager 创建新的音频管理器
// ctx 和 sm 都可以为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	sampleRate := SampleRate
	if ctx != nil {
		sampleRate = ctx.SampleRate()
	}
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		squeak:          SynthesizeSqueak(sampleRate),
	}
}

// PlaySqueak 播放吱吱声，返回是否实际播放
func (am *AudioManager) PlaySqueak() bool {
	if am.audioContext == nil {
		return false
	}

	volume := DefaultSettings().Volume
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if settings.Muted {
			return false
		}
		volume = settings.Volume
	}

	// 每次新建播放器，允许连续触发时声音重叠
	player := am.audioContext.NewPlayerFromBytes(am.squeak)
	player.SetVolume(volume)
	player.Play()
	log.Debugf("[AudioManager] squeak (volume %.2f)", volume)
	return true
}

// SynthesizeSqueak 生成 16 位小端立体声 PCM 的吱吱声
// 正弦波扫频，包络为半个正弦，首尾为 0 避免爆音
func SynthesizeSqueak(sampleRate int) []byte {
	n := int(squeakDuration * float64(sampleRate))
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := squeakStartHz + (squeakEndHz-squeakStartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		envelope := math.Sin(math.Pi * progress)
		sample := int16(math.Sin(phase) * envelope * 0.5 * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
