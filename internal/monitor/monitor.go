// Package monitor 在后台采样系统 CPU 和内存占用
// 桌宠据此判断系统是否繁忙（繁忙时动画加速）
package monitor

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats 一次采样结果（百分比，保留 1 位小数）
type Stats struct {
	CPU    float64
	Memory float64
}

// SampleFunc 采样函数，测试中替换
type SampleFunc func() (Stats, error)

// Sampler 周期性采样器
// 采样失败时保留上一次的值，从未成功过则为 0
type Sampler struct {
	interval time.Duration
	sample   SampleFunc

	mu      sync.RWMutex
	current Stats
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSampler 创建基于 gopsutil 的采样器
func NewSampler(interval time.Duration) *Sampler {
	return NewSamplerWith(interval, SystemStats)
}

// NewSamplerWith 使用自定义采样函数创建采样器
func NewSamplerWith(interval time.Duration, sample SampleFunc) *Sampler {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Sampler{
		interval: interval,
		sample:   sample,
	}
}

// SystemStats 读取系统 CPU 和内存占用
//
// cpu.Percent(0, false) 不阻塞，返回与上一次调用之间的平均值，
// 所以第一次调用可能是 0。
func SystemStats() (Stats, error) {
	var stats Stats

	v, err := mem.VirtualMemory()
	if err != nil {
		return stats, err
	}
	stats.Memory = round1(v.UsedPercent)

	c, err := cpu.Percent(0, false)
	if err != nil {
		return stats, err
	}
	if len(c) > 0 {
		stats.CPU = round1(c[0])
	}
	return stats, nil
}

// Start 启动后台采样协程，立即采样一次
// ctx 取消或调用 Stop 后协程退出
func (s *Sampler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	s.update()
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.update()
			}
		}
	}()
}

// Stop 停止采样并等待协程退出
func (s *Sampler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
}

// Stats 最近一次采样结果
func (s *Sampler) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Busy CPU 占用是否超过阈值（百分比）
func (s *Sampler) Busy(thresholdCPU float64) bool {
	return s.Stats().CPU > thresholdCPU
}

func (s *Sampler) update() {
	stats, err := s.sample()
	if err != nil {
		// 采样失败按零负载处理，避免一直停在上一次的高负载
		log.Debugf("[Monitor] sample failed: %v", err)
		stats = Stats{}
	}
	s.mu.Lock()
	s.current = stats
	s.mu.Unlock()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
