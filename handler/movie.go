package handler

import (
	"errors"

	"cinema_storefront/constants"
	"cinema_storefront/helper"
	"cinema_storefront/model"
	"cinema_storefront/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMovies trả toàn bộ catalog đang cache kèm slug cho từng phim
func GetMovies(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, helper.ToMovieViews(helper.Movies()))
}

func SearchMovies(c *fiber.Ctx) error {
	var params model.MovieSearchParams
	if err := c.QueryParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tham số tìm kiếm không hợp lệ", err)
	}

	movies := helper.SearchMovies(params.Query, params.Genre)
	return utils.SuccessResponse(c, fiber.StatusOK, helper.ToMovieViews(movies))
}

func GetPopularMovies(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, helper.ToMovieViews(helper.PopularMovies()))
}

// GetRecommendedMovies gợi ý theo lịch sử đặt vé, khách chưa đăng nhập thì lấy đầu catalog
func GetRecommendedMovies(c *fiber.Ctx) error {
	userId := ""
	if session, ok := c.Locals("session").(*model.Session); ok && session != nil {
		userId = session.User.Id
	}

	movies := helper.RecommendedMovies(c.Context(), userId)
	return utils.SuccessResponse(c, fiber.StatusOK, helper.ToMovieViews(movies))
}

func GetMovieBySlug(c *fiber.Ctx) error {
	movie, ok := helper.MovieBySlug(c.Params("slug"))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, errors.New("movie not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func GetMovieShowtimes(c *fiber.Ctx) error {
	movieId := c.Params("movieId")
	if _, ok := helper.MovieById(movieId); !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, errors.New("movie not found"))
	}

	showtimes, err := helper.MovieShowtimes(c.Context(), movieId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, showtimes)
}
