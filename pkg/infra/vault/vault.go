package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/cirelay/cirelay/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	keyLength = 32
	ivLength  = 16
	tagLength = 16
)

// Vault encrypts and decrypts stored access tokens with AES-256-GCM. The
// serialized form is iv:tag:ciphertext, each segment hex-encoded. A fresh
// random IV is generated per Encrypt call; the key is fixed for the process
// lifetime.
type Vault struct {
	key []byte
}

// New fails unless the key is exactly 32 bytes. Running with a truncated or
// padded key silently weakens every stored token, so this is fatal.
func New(key string) (*Vault, error) {
	if len(key) != keyLength {
		return nil, goerr.Wrap(types.ErrInvalidOption, "encryption key must be exactly 32 bytes",
			goerr.V("length", len(key)),
		)
	}

	return &Vault{key: []byte(key)}, nil
}

func (x *Vault) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(x.key)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize cipher")
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize GCM")
	}

	return gcm, nil
}

func (x *Vault) Encrypt(plaintext string) (types.EncryptedToken, error) {
	gcm, err := x.aead()
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return "", goerr.Wrap(err, "failed to generate IV")
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagLength]
	tag := sealed[len(sealed)-tagLength:]

	encoded := hex.EncodeToString(iv) + ":" + hex.EncodeToString(tag) + ":" + hex.EncodeToString(ciphertext)
	return types.EncryptedToken(encoded), nil
}

// Decrypt fails closed: a malformed token yields types.ErrCipherFormat and a
// failed tag check yields types.ErrCipherAuth. It never returns garbage
// plaintext.
func (x *Vault) Decrypt(token types.EncryptedToken) (string, error) {
	parts := strings.Split(string(token), ":")
	if len(parts) != 3 {
		return "", goerr.Wrap(types.ErrCipherFormat, "expected iv:tag:ciphertext",
			goerr.V("segments", len(parts)),
		)
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", goerr.Wrap(types.ErrCipherFormat, "IV is not hex encoded")
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", goerr.Wrap(types.ErrCipherFormat, "tag is not hex encoded")
	}
	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", goerr.Wrap(types.ErrCipherFormat, "ciphertext is not hex encoded")
	}

	if len(iv) != ivLength || len(tag) != tagLength {
		return "", goerr.Wrap(types.ErrCipherFormat, "invalid segment length",
			goerr.V("ivLength", len(iv)),
			goerr.V("tagLength", len(tag)),
		)
	}

	gcm, err := x.aead()
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return "", goerr.Wrap(types.ErrCipherAuth, "tag verification failed")
	}

	return string(plaintext), nil
}
