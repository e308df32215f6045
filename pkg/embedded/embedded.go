// Package embedded 提供嵌入资源的统一访问接口
//
// //go:embed 只能嵌入当前包目录及其子目录，所以嵌入声明放在项目根目录的
// embed.go，本包只负责按路径前缀路由：
//   - "assets/..." 读取精灵图等资源
//   - "data/..."   读取内置 YAML 配置
//   - 其他路径     直接读磁盘（用于 --config / --skins 指向的用户文件）
//
// 使用嵌入路径前必须调用 Init()。
package embedded

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init() 之前访问嵌入路径时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 设置资源文件系统，必须在任何嵌入资源加载之前调用
// 测试中可以传入 fstest.MapFS
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// Reset 清除初始化状态，仅供测试使用
func Reset() {
	assetsFS = nil
	dataFS = nil
	initialized = false
}

// IsEmbeddedPath 判断路径是否指向嵌入资源
func IsEmbeddedPath(path string) bool {
	path = normalize(path)
	return strings.HasPrefix(path, "assets/") || strings.HasPrefix(path, "data/")
}

func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

// resolve 返回路径对应的文件系统；磁盘路径返回 nil
func resolve(path string) (fs.FS, string, error) {
	path = normalize(path)
	if !IsEmbeddedPath(path) {
		return nil, path, nil
	}
	if !initialized {
		return nil, path, ErrNotInitialized
	}
	if strings.HasPrefix(path, "assets/") {
		return assetsFS, path, nil
	}
	return dataFS, path, nil
}

// Open 打开嵌入资源或磁盘文件
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		return os.Open(filepath.FromSlash(name))
	}
	return fsys.Open(name)
}

// ReadFile 读取嵌入资源或磁盘文件的全部内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		return os.ReadFile(filepath.FromSlash(name))
	}
	return fs.ReadFile(fsys, name)
}
