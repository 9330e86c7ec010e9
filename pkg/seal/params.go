package seal

import (
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
	"golang.org/x/crypto/scrypt"
)

const (
	DefaultIterations   uint64 = 1 << 17
	MaxIterations       uint64 = 1 << 20
	DefaultRelBlockSize uint8  = 8
	MaxRelBlockSize     uint8  = 32
	DefaultCPUCost      uint8  = 1
	MaxCPUCost          uint8  = 16
	AES256KeySize       uint8  = 256 / 8
	AES128KeySize       uint8  = 128 / 8
)

// Params holds the scrypt tuning values used to derive a sealing key.
type Params struct {
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
	keySize           uint8
}

func (p *Params) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&p.iterations),
		bin.Byte(&p.relativeBlockSize),
		bin.Byte(&p.cpuCost),
		bin.Byte(&p.keySize),
	)
}

type Opt = func(*Params) error

// Iterations sets the scrypt cost parameter, which must be a power of 2 greater than 1.
func Iterations(iterations uint64) Opt {
	return func(p *Params) error {
		p.iterations = iterations
		return p.validate()
	}
}

// CPUCost sets the scrypt parallelism factor from the default of 1.
func CPUCost(cost uint8) Opt {
	return func(p *Params) error {
		p.cpuCost = cost
		return p.validate()
	}
}

// RelativeBlockSize sets the scrypt block size from the default of 8.
func RelativeBlockSize(size uint8) Opt {
	return func(p *Params) error {
		p.relativeBlockSize = size
		return p.validate()
	}
}

// AES128 selects a 128 bit key instead of the default 256 bit key.
func AES128() Opt {
	return func(p *Params) error {
		p.keySize = AES128KeySize
		return nil
	}
}

// NewParams creates Params from the defaults, modified by zero or more Opt.
func NewParams(opts ...Opt) (*Params, error) {
	p := &Params{
		iterations:        DefaultIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCPUCost,
		keySize:           AES256KeySize,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Params) validate() error {
	switch {
	case p.iterations <= 1 || p.iterations&(p.iterations-1) != 0:
		return fmt.Errorf("%w: iterations must be a power of 2 greater than 1", ErrInvalidParams)
	case p.iterations > MaxIterations:
		return fmt.Errorf("%w: iterations must not exceed %d", ErrInvalidParams, MaxIterations)
	case p.relativeBlockSize < DefaultRelBlockSize || p.relativeBlockSize > MaxRelBlockSize:
		return fmt.Errorf("%w: relative block size must be between %d and %d", ErrInvalidParams, DefaultRelBlockSize, MaxRelBlockSize)
	case p.cpuCost < DefaultCPUCost || p.cpuCost > MaxCPUCost:
		return fmt.Errorf("%w: cpu cost must be between %d and %d", ErrInvalidParams, DefaultCPUCost, MaxCPUCost)
	case p.keySize != AES128KeySize && p.keySize != AES256KeySize:
		return fmt.Errorf("%w: unsupported key size %d", ErrInvalidParams, p.keySize)
	}
	return nil
}

func (p *Params) deriveKey(pass, salt []byte) ([]byte, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassphrase
	}
	return scrypt.Key(pass, salt, int(p.iterations), int(p.relativeBlockSize), int(p.cpuCost), int(p.keySize))
}

var (
	ErrEmptyPassphrase = errors.New("cannot use an empty passphrase")
	ErrInvalidParams   = errors.New("invalid sealing parameters")
	ErrInvalidData     = errors.New("unable to use sealed data")
)
