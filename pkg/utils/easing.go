package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快（按住拖动时桌宠"慢慢跟上"）
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// SmoothingFactor 把"每帧靠近 perTick 比例"换算成经过 ticks 帧后的总比例
// ticks = deltaTime × 帧率；固定帧率下 ticks=1，结果就是 perTick
// 公式：1 - (1-perTick)^ticks
func SmoothingFactor(perTick, ticks float64) float64 {
	return 1 - math.Pow(1-Clamp01(perTick), ticks)
}
