package pkg

import (
	cryptoRand "crypto/rand"
	"math/big"
	"strings"
)

const MemberIDPrefix = "IEDC"

func RandDigits(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		x, err := cryptoRand.Int(cryptoRand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + x.Int64()))
	}
	return b.String(), nil
}

// NewMemberID 生成会员号（IEDC+4位数字），撞唯一索引由调用方重试
func NewMemberID() (string, error) {
	digits, err := RandDigits(4)
	if err != nil {
		return "", err
	}
	return MemberIDPrefix + digits, nil
}

// NormalizeMemberID 会员号统一大写去空格，写入和查询都走这里
func NormalizeMemberID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
