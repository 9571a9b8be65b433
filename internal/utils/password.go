package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword 使用 bcrypt 生成自适应加盐哈希，不可逆。
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 重新计算并比较，比较过程由 bcrypt 保证恒定时间。
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
