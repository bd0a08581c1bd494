package controllers

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"
	"healthsync-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogController serves the browsable product catalog: medicines, lab
// tests, and health articles. All endpoints are public reads.
type CatalogController struct {
	Log                  *zap.Logger
	MedicineUsecase      contracts.MedicineUsecase
	LabTestUsecase       contracts.LabTestUsecase
	HealthArticleUsecase contracts.HealthArticleUsecase
}

func NewCatalogController(
	logger *zap.Logger,
	medicineUsecase contracts.MedicineUsecase,
	labTestUsecase contracts.LabTestUsecase,
	healthArticleUsecase contracts.HealthArticleUsecase,
) *CatalogController {
	return &CatalogController{
		Log:                  logger,
		MedicineUsecase:      medicineUsecase,
		LabTestUsecase:       labTestUsecase,
		HealthArticleUsecase: healthArticleUsecase,
	}
}

func (ctrl *CatalogController) FindAllMedicines(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("CatalogController.FindAllMedicines requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	queryParamsRequest := utils.BuildQueryParamsRequest(r)
	paginationRequest := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, total, err := ctrl.MedicineUsecase.FindAll(ctx, queryParamsRequest, paginationRequest)
	if err != nil {
		ctrl.Log.Error("CatalogController.FindAllMedicines MedicineUsecase.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, paginationRequest.Page, paginationRequest.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetMedicineSuccess, pagination, response)
}

func (ctrl *CatalogController) FindMedicineByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("CatalogController.FindMedicineByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	medicineID := chi.URLParam(r, "medicineID")
	if medicineID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDMissing("medicineID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineUsecase.FindByID(ctx, medicineID)
	if err != nil {
		ctrl.Log.Error("CatalogController.FindMedicineByID MedicineUsecase.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicineSuccess, response)
}

func (ctrl *CatalogController) FindAllLabTests(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("CatalogController.FindAllLabTests requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LabTestUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("CatalogController.FindAllLabTests LabTestUsecase.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabTestSuccess, response)
}

func (ctrl *CatalogController) FindLabTestByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("CatalogController.FindLabTestByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	labTestID := chi.URLParam(r, "labTestID")
	if labTestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDMissing("labTestID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LabTestUsecase.FindByID(ctx, labTestID)
	if err != nil {
		ctrl.Log.Error("CatalogController.FindLabTestByID LabTestUsecase.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabTestSuccess, response)
}

func (ctrl *CatalogController) FindAllArticles(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("CatalogController.FindAllArticles requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.HealthArticleUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("CatalogController.FindAllArticles HealthArticleUsecase.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArticleSuccess, response)
}

func (ctrl *CatalogController) FindArticleByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("CatalogController.FindArticleByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	articleID := chi.URLParam(r, "articleID")
	if articleID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDMissing("articleID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.HealthArticleUsecase.FindByID(ctx, articleID)
	if err != nil {
		ctrl.Log.Error("CatalogController.FindArticleByID HealthArticleUsecase.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArticleSuccess, response)
}
