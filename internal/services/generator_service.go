package services

import (
	"github.com/google/uuid"

	"github.com/pratik-mahalle/alertforge/internal/catalog"
	"github.com/pratik-mahalle/alertforge/internal/config"
	"github.com/pratik-mahalle/alertforge/internal/domain/alert"
	"github.com/pratik-mahalle/alertforge/internal/iac/cloudformation"
	"github.com/pratik-mahalle/alertforge/internal/pkg/logger"
	"github.com/pratik-mahalle/alertforge/internal/pkg/metrics"
	"github.com/pratik-mahalle/alertforge/internal/resolver"
	"github.com/pratik-mahalle/alertforge/internal/synthesizer"
)

// GeneratorService orchestrates one generation run: it resolves the
// configured alert selectors per category, matches them against the compiled
// template and synthesizes the declarations to merge back. Categories are
// processed independently; an empty category never affects the others.
type GeneratorService struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	logger  *logger.Logger
}

// NewGeneratorService creates a new generator service
func NewGeneratorService(cfg *config.Config, cat *catalog.Catalog, log *logger.Logger) *GeneratorService {
	return &GeneratorService{
		cfg:     cfg,
		catalog: cat,
		logger:  log,
	}
}

// GenerateResult holds the outcome of one run.
type GenerateResult struct {
	// PolicyKey is the logical ID of the policy declaration, empty when no
	// condition was generated.
	PolicyKey string
	// Declarations maps logical IDs to declarations, policy included.
	Declarations map[string]alert.Declaration
	// Warnings lists the unknown selectors encountered.
	Warnings []string
}

// Generate runs resolution and synthesis over the template. It never fails
// for absence of data; the only errors the generator can surface happen
// earlier, at configuration load.
func (s *GeneratorService) Generate(tpl *cloudformation.Template) *GenerateResult {
	runID := uuid.NewString()
	log := s.logger.With("run_id", runID)
	metrics.RecordRun()

	result := &GenerateResult{Declarations: make(map[string]alert.Declaration)}
	report := func(msg string) {
		result.Warnings = append(result.Warnings, msg)
		metrics.RecordUnknownSelector()
		log.Warn(msg)
	}

	res := resolver.New(s.catalog, s.cfg.Defaults.ViolationCloseTimer, report)
	policyKey := alert.PolicyKey(s.cfg.Policy.Name)
	synth := synthesizer.New(s.cfg.Policy.ConditionServiceToken, policyKey, s.cfg.ServiceContext())

	s.generateFunctions(res, synth, result, log)
	for _, category := range []alert.Category{alert.CategoryAPIGateway, alert.CategorySQS, alert.CategoryDynamoDB} {
		resolved := res.Resolve(category, s.cfg.Alerts.For(category))
		decls := synth.Resources(category, resolved, tpl.Resources)
		s.collect(result, decls, category, log)
	}

	// The policy resource is only worth declaring when at least one
	// condition references it.
	if len(result.Declarations) > 0 {
		result.PolicyKey = policyKey
		result.Declarations[policyKey] = alert.NewPolicyDeclaration(
			s.cfg.Policy.ServiceToken,
			s.cfg.Policy.Name,
			s.cfg.Policy.IncidentPreference,
		)
	}

	log.WithFields(map[string]interface{}{
		"declarations": len(result.Declarations),
		"warnings":     len(result.Warnings),
	}).Info("Alert declarations generated")

	return result
}

// generateFunctions handles the function category. A function carrying its
// own alert list is excluded from the global cross-product entirely; its
// local list fully replaces the global one.
func (s *GeneratorService) generateFunctions(res *resolver.Resolver, synth *synthesizer.Synthesizer, result *GenerateResult, log *logger.Logger) {
	var globalFns []alert.FunctionInfo
	var localFns []alert.FunctionInfo
	for _, fn := range s.cfg.Functions {
		if len(fn.Alerts) > 0 {
			localFns = append(localFns, fn)
		} else {
			globalFns = append(globalFns, fn)
		}
	}

	global := res.Resolve(alert.CategoryFunction, s.cfg.Alerts.Function)
	s.collect(result, synth.Functions(global, globalFns), alert.CategoryFunction, log)

	for _, fn := range localFns {
		local := res.Resolve(alert.CategoryFunction, fn.Alerts)
		s.collect(result, synth.Functions(local, []alert.FunctionInfo{fn}), alert.CategoryFunction, log)
	}
}

func (s *GeneratorService) collect(result *GenerateResult, decls map[string]alert.Declaration, category alert.Category, log *logger.Logger) {
	if len(decls) == 0 {
		return
	}
	for key, d := range decls {
		result.Declarations[key] = d
	}
	metrics.RecordDeclarations(string(category), len(decls))
	log.WithFields(map[string]interface{}{
		"category": category,
		"count":    len(decls),
	}).Debug("Category declarations synthesized")
}

// MergeIntoTemplate merges a run's declarations into the template.
func (s *GeneratorService) MergeIntoTemplate(tpl *cloudformation.Template, result *GenerateResult) {
	cloudformation.MergeDeclarations(tpl, result.Declarations)
}
