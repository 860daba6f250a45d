// Package shopsvc - Test kiểm tra mã bí mật của cửa hàng bằng bcrypt.
package shopsvc

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	shopmodels "local_commerce/internal/api/shop/models"
	"local_commerce/internal/common"
)

func hashSecret(t *testing.T, secret string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("không hash được mã bí mật: %v", err)
	}
	return string(hash)
}

func TestCheckSecret_DungMatKhau(t *testing.T) {
	shop := &shopmodels.Shop{SecretHash: hashSecret(t, "mat-khau-123")}
	if err := CheckSecret(shop, "mat-khau-123"); err != nil {
		t.Errorf("CheckSecret với mật khẩu đúng phải thành công, got %v", err)
	}
}

func TestCheckSecret_SaiMatKhau(t *testing.T) {
	shop := &shopmodels.Shop{SecretHash: hashSecret(t, "mat-khau-123")}
	err := CheckSecret(shop, "mat-khau-sai")
	if !errors.Is(err, common.ErrInvalidSecret) {
		t.Errorf("CheckSecret với mật khẩu sai phải trả về ErrInvalidSecret, got %v", err)
	}
}

func TestCheckSecret_ThieuMatKhau(t *testing.T) {
	shop := &shopmodels.Shop{SecretHash: hashSecret(t, "mat-khau-123")}
	err := CheckSecret(shop, "")
	if !errors.Is(err, common.ErrSecretRequired) {
		t.Errorf("CheckSecret với mật khẩu rỗng phải trả về ErrSecretRequired, got %v", err)
	}
}
