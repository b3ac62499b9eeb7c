package cmd

import (
	"crypto/rsa"
	"log/slog"

	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/jobs"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateTruckCommandHandler() commands.CreateTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateEditTruckCommandHandler() commands.EditTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteTruckCommandHandler() commands.DeleteTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateEditPackageCommandHandler() commands.EditPackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditPackageCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePackageCommandHandler() commands.DeletePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPackageCommandHandler() commands.AssignPackageCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPackageCommandHandler(f)
}

func (c *CompositionRoot) CreateUnassignPackageCommandHandler() commands.UnassignPackageCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignPackageCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateManagerCommandHandler() commands.CreateManagerCommandHandler {
	var f commands.ManagerUoWFactory = FuncManagerUoWFactory(func() commands.ManagerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateManagerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTruckQueryHandler() queries.GetTruckQueryHandler {
	var f queries.TruckReadUoWFactory = FuncTruckReadUoWFactory(func() queries.TruckReadUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetTruckQueryHandler(f)
}

func (c *CompositionRoot) CreateGetTrucksQueryHandler() queries.GetTrucksQueryHandler {
	var f queries.TruckReadUoWFactory = FuncTruckReadUoWFactory(func() queries.TruckReadUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetTrucksQueryHandler(f)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	var f queries.PackageReadUoWFactory = FuncPackageReadUoWFactory(func() queries.PackageReadUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetPackageQueryHandler(f)
}

func (c *CompositionRoot) CreateGetPackagesQueryHandler() queries.GetPackagesQueryHandler {
	var f queries.PackageReadUoWFactory = FuncPackageReadUoWFactory(func() queries.PackageReadUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetPackagesQueryHandler(f)
}

func (c *CompositionRoot) CreateGetManagersQueryHandler() queries.GetManagersQueryHandler {
	var f queries.ManagerReadUoWFactory = FuncManagerReadUoWFactory(func() queries.ManagerReadUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetManagersQueryHandler(f)
}

func (c *CompositionRoot) CreateGetManagerByAuthIDQueryHandler() queries.GetManagerByAuthIDQueryHandler {
	var f queries.ManagerReadUoWFactory = FuncManagerReadUoWFactory(func() queries.ManagerReadUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetManagerByAuthIDQueryHandler(f)
}

func (c *CompositionRoot) CreateCarrierAuditQueryHandler() queries.CarrierAuditQueryHandler {
	return queries.NewCarrierAuditQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateTruckCommandHandler(),
		c.CreateEditTruckCommandHandler(),
		c.CreateDeleteTruckCommandHandler(),
		c.CreateCreatePackageCommandHandler(),
		c.CreateEditPackageCommandHandler(),
		c.CreateDeletePackageCommandHandler(),
		c.CreateAssignPackageCommandHandler(),
		c.CreateUnassignPackageCommandHandler(),
		c.CreateCreateManagerCommandHandler(),
		c.CreateGetTruckQueryHandler(),
		c.CreateGetTrucksQueryHandler(),
		c.CreateGetPackageQueryHandler(),
		c.CreateGetPackagesQueryHandler(),
		c.CreateGetManagersQueryHandler(),
		c.CreateGetManagerByAuthIDQueryHandler(),
		c.config.PageSize,
	)
}

// CreateTokenVerifier builds the bearer token verifier from the configured
// RS256 public key. A missing or unparsable key yields a verifier without a
// key, which rejects every token with a no_verification_key error.
func (c *CompositionRoot) CreateTokenVerifier() *httpadapter.TokenVerifier {
	var publicKey *rsa.PublicKey

	if c.config.AuthPublicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(c.config.AuthPublicKeyPEM))
		if err != nil {
			c.logger.Error("Failed to parse auth public key", "error", err)
		} else {
			publicKey = key
		}
	}

	return httpadapter.NewTokenVerifier(publicKey, c.config.AuthIssuer, c.config.AuthAudience)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCarrierAuditQueryHandler(), c.config.AuditSchedule, c.logger)
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncManagerUoWFactory func() commands.ManagerUoW

func (f FuncManagerUoWFactory) Create() commands.ManagerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncTruckReadUoWFactory func() queries.TruckReadUoW

func (f FuncTruckReadUoWFactory) Create() queries.TruckReadUoW {
	return f()
}

type FuncPackageReadUoWFactory func() queries.PackageReadUoW

func (f FuncPackageReadUoWFactory) Create() queries.PackageReadUoW {
	return f()
}

type FuncManagerReadUoWFactory func() queries.ManagerReadUoW

func (f FuncManagerReadUoWFactory) Create() queries.ManagerReadUoW {
	return f()
}
