package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// 测试内容：验证 SecureJoin 拼接合法 key 并拒绝越界路径。
func TestSecureJoin(t *testing.T) {
	base := t.TempDir()

	got, err := SecureJoin(base, "gs-files/123-abcd1234-scene.splat")
	if err != nil {
		t.Fatalf("SecureJoin 合法 key 失败: %v", err)
	}
	if !strings.HasPrefix(got, base) {
		t.Fatalf("期望结果位于基目录下: %s", got)
	}

	if _, err := SecureJoin(base, "../escape.splat"); err == nil {
		t.Fatal("期望 .. 越界被拒绝")
	}
	if _, err := SecureJoin(base, "/etc/passwd"); err == nil {
		t.Fatal("期望绝对路径被拒绝")
	}
}

// 测试内容：验证链路中的符号链接会被拒绝。
func TestSecureJoinRejectsSymlink(t *testing.T) {
	base := t.TempDir()
	outside := t.TempDir()

	link := filepath.Join(base, "link")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("无法创建符号链接: %v", err)
	}

	if _, err := SecureJoin(base, "link/file.splat"); err == nil {
		t.Fatal("期望符号链接穿透被拒绝")
	}
}
